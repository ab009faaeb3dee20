package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/textops"
)

func openRecipeManager(stderr io.Writer) (*textops.RecipeManager, int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return nil, 1
	}
	rm := textops.NewRecipeManager(cfg.RecipeDir)
	if err := rm.Load(); err != nil {
		fmt.Fprintf(stderr, "load recipes: %v\n", err)
		return nil, 1
	}
	return rm, 0
}

func runRecipe(sub string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	switch sub {
	case "list":
		return runRecipeList(args, stdout, stderr)
	case "save":
		return runRecipeSave(args, stdout, stderr)
	case "show":
		return runRecipeShow(args, stdout, stderr)
	case "delete":
		return runRecipeDelete(args, stdout, stderr)
	case "run":
		return runRecipeRun(args, stdin, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown recipe subcommand: %s\n", sub)
		return 2
	}
}

func runRecipeList(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipe list", flag.ContinueOnError)
	fs.SetOutput(stderr)

	query := fs.String("search", "", "Filter by name, description, or tag")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	rm, code := openRecipeManager(stderr)
	if code != 0 {
		return code
	}

	var recipes []*textops.Recipe
	if *query == "" {
		recipes = rm.List()
	} else {
		recipes = rm.Search(*query)
	}
	if len(recipes) == 0 {
		fmt.Fprintln(stdout, "no recipes")
		return 0
	}

	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	for _, r := range recipes {
		steps := make([]string, len(r.Pipeline.Operations))
		for i, step := range r.Pipeline.Operations {
			steps[i] = step.Name
		}
		fmt.Fprintf(stdout, "%-24s %s\n", r.Name, strings.Join(steps, " | "))
	}
	return 0
}

func runRecipeSave(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipe save", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Recipe name")
	opsSpec := fs.String("ops", "", "Comma-separated operation names")
	description := fs.String("description", "", "Recipe description")
	tagSpec := fs.String("tags", "", "Comma-separated tags")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" || *opsSpec == "" {
		fmt.Fprintln(stderr, "--name and --ops flags are required")
		return 2
	}

	recipe := &textops.Recipe{
		Name:        *name,
		Description: *description,
		Pipeline:    textops.Pipeline{Reversible: true},
	}
	for _, opName := range strings.Split(*opsSpec, ",") {
		opName = strings.TrimSpace(opName)
		if opName == "" {
			continue
		}
		if _, ok := textops.Lookup(opName); !ok {
			fmt.Fprintf(stderr, "unknown operation: %s\n", opName)
			return 2
		}
		recipe.Pipeline.Operations = append(recipe.Pipeline.Operations, textops.OperationConfig{Name: opName})
	}
	if *tagSpec != "" {
		for _, tag := range strings.Split(*tagSpec, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				recipe.Tags = append(recipe.Tags, tag)
			}
		}
	}

	rm, code := openRecipeManager(stderr)
	if code != 0 {
		return code
	}
	if err := rm.Save(recipe); err != nil {
		fmt.Fprintf(stderr, "save recipe: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "saved recipe %s (%d steps)\n", recipe.Name, len(recipe.Pipeline.Operations))
	return 0
}

func runRecipeShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipe show", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Recipe name")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(stderr, "--name flag is required")
		return 2
	}

	rm, code := openRecipeManager(stderr)
	if code != 0 {
		return code
	}
	recipe, ok := rm.Get(*name)
	if !ok {
		fmt.Fprintf(stderr, "recipe not found: %s\n", *name)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipe); err != nil {
		fmt.Fprintf(stderr, "encode recipe: %v\n", err)
		return 1
	}
	return 0
}

func runRecipeDelete(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipe delete", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Recipe name")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(stderr, "--name flag is required")
		return 2
	}

	rm, code := openRecipeManager(stderr)
	if code != 0 {
		return code
	}
	if _, ok := rm.Get(*name); !ok {
		fmt.Fprintf(stderr, "recipe not found: %s\n", *name)
		return 1
	}
	if err := rm.Delete(*name); err != nil {
		fmt.Fprintf(stderr, "delete recipe: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "deleted recipe %s\n", *name)
	return 0
}

func runRecipeRun(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipe run", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Recipe name")
	input := fs.String("input", "", "Input text (default: stdin)")
	reverse := fs.Bool("reverse", false, "Apply the inverse pipeline instead")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(stderr, "--name flag is required")
		return 2
	}

	rm, code := openRecipeManager(stderr)
	if code != 0 {
		return code
	}
	recipe, ok := rm.Get(*name)
	if !ok {
		fmt.Fprintf(stderr, "recipe not found: %s\n", *name)
		return 1
	}

	pipeline := &recipe.Pipeline
	if *reverse {
		reversed, err := pipeline.Reverse()
		if err != nil {
			fmt.Fprintf(stderr, "cannot reverse recipe: %v\n", err)
			return 1
		}
		pipeline = reversed
	}

	data, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	out, err := pipeline.Execute(context.Background(), data)
	if err != nil {
		fmt.Fprintf(stderr, "recipe failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
