package textops

import (
	"context"
	"strings"
)

// morseAlphabet is the single authored direction of the Morse table:
// 36 symbols (A-Z, 0-9) to dot/dash tokens. The decode table is derived
// from it at init so the two directions cannot drift apart.
var morseAlphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
}

var morseInverse map[string]rune

func init() {
	morseInverse = make(map[string]rune, len(morseAlphabet))
	for symbol, token := range morseAlphabet {
		if _, dup := morseInverse[token]; dup {
			panic("morse: duplicate token " + token)
		}
		morseInverse[token] = symbol
	}
}

// MorseEncodeOp encodes text as Morse tokens. Characters outside the
// 36-symbol alphabet are silently dropped; this codec is lossy by contract.
type MorseEncodeOp struct {
	BaseOperation
}

func (op *MorseEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	tokens := make([]string, 0, len(input))
	for _, r := range strings.ToUpper(string(input)) {
		if token, ok := morseAlphabet[r]; ok {
			tokens = append(tokens, token)
		}
	}
	return []byte(strings.Join(tokens, " ")), nil
}

// MorseDecodeOp decodes space-separated Morse tokens. Unknown tokens are
// silently dropped, mirroring the encode side's loss policy.
type MorseDecodeOp struct {
	BaseOperation
}

func (op *MorseDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	var out strings.Builder
	for _, token := range strings.Split(string(input), " ") {
		if symbol, ok := morseInverse[token]; ok {
			out.WriteRune(symbol)
		}
	}
	return []byte(out.String()), nil
}

func init() {
	morseEncode := &MorseEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "morse_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode A-Z and 0-9 as Morse tokens (lossy for other characters)",
		},
	}
	morseDecode := &MorseDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "morse_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode space-separated Morse tokens",
		},
	}
	morseEncode.ReverseOp = morseDecode
	morseDecode.ReverseOp = morseEncode

	mustRegister(morseEncode)
	mustRegister(morseDecode)
}
