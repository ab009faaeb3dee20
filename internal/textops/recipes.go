package textops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RecipeManager stores named pipelines, optionally persisting them as JSON
// files under a store directory. Safe for concurrent use.
type RecipeManager struct {
	recipes   map[string]*Recipe
	storePath string
	mu        sync.RWMutex
}

// NewRecipeManager creates a recipe manager. An empty storePath keeps all
// recipes in memory only.
func NewRecipeManager(storePath string) *RecipeManager {
	return &RecipeManager{
		recipes:   make(map[string]*Recipe),
		storePath: storePath,
	}
}

// Save stores a recipe, stamping creation and update times.
func (rm *RecipeManager) Save(recipe *Recipe) error {
	if recipe.Name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	if recipe.CreatedAt == "" {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now
	rm.recipes[recipe.Name] = recipe

	if rm.storePath != "" {
		return rm.persist(recipe)
	}
	return nil
}

// Get retrieves a recipe by name.
func (rm *RecipeManager) Get(name string) (*Recipe, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	recipe, ok := rm.recipes[name]
	return recipe, ok
}

// List returns all stored recipes.
func (rm *RecipeManager) List() []*Recipe {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	recipes := make([]*Recipe, 0, len(rm.recipes))
	for _, recipe := range rm.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes
}

// Delete removes a recipe from memory and, when configured, from disk.
func (rm *RecipeManager) Delete(name string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	delete(rm.recipes, name)

	if rm.storePath != "" {
		path := filepath.Join(rm.storePath, recipeFilename(name))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete recipe file: %w", err)
		}
	}
	return nil
}

// Load reads every recipe file from the store directory, creating it when
// missing.
func (rm *RecipeManager) Load() error {
	if rm.storePath == "" {
		return nil
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if err := os.MkdirAll(rm.storePath, 0o755); err != nil {
		return fmt.Errorf("create recipe directory: %w", err)
	}
	entries, err := os.ReadDir(rm.storePath)
	if err != nil {
		return fmt.Errorf("read recipe directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(rm.storePath, entry.Name()))
		if err != nil {
			return fmt.Errorf("read recipe %s: %w", entry.Name(), err)
		}
		var recipe Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			return fmt.Errorf("parse recipe %s: %w", entry.Name(), err)
		}
		rm.recipes[recipe.Name] = &recipe
	}
	return nil
}

// Search finds recipes whose name, description, or tags contain the query,
// case-insensitively.
func (rm *RecipeManager) Search(query string) []*Recipe {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	matches := make([]*Recipe, 0)
	for _, recipe := range rm.recipes {
		if containsFold(recipe.Name, query) || containsFold(recipe.Description, query) {
			matches = append(matches, recipe)
			continue
		}
		for _, tag := range recipe.Tags {
			if containsFold(tag, query) {
				matches = append(matches, recipe)
				break
			}
		}
	}
	return matches
}

func (rm *RecipeManager) persist(recipe *Recipe) error {
	if err := os.MkdirAll(rm.storePath, 0o755); err != nil {
		return fmt.Errorf("create recipe directory: %w", err)
	}
	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize recipe: %w", err)
	}
	path := filepath.Join(rm.storePath, recipeFilename(recipe.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write recipe file: %w", err)
	}
	return nil
}

// recipeFilename maps a recipe name to a safe JSON filename.
func recipeFilename(name string) string {
	var safe strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			safe.WriteRune(r)
		case r == ' ':
			safe.WriteByte('_')
		}
	}
	if safe.Len() == 0 {
		return "recipe.json"
	}
	return safe.String() + ".json"
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
