package domain

// Key alphabets shared by both engines.
const (
	// SymbolMarker in the separator field selects symbol mode.
	SymbolMarker = "*"

	// NumberMarker prefixes strokes rewritten from number-key shorthand.
	NumberMarker = "#"

	// LeftKeys are the consonants of the left hand in steno order.
	LeftKeys = "STKPWHR"

	// LeftVowels are the vowel keys pressed with the left thumb.
	LeftVowels = "AO"

	// RightVowels are the vowel keys pressed with the right thumb.
	RightVowels = "EU"

	// Separators split the left bank from the right bank.
	Separators = "*-"

	// NumeralIndicator is the vowel pattern that selects numeral mode.
	NumeralIndicator = "AO"

	// CommandPrefix and CommandSuffix wrap every output command.
	CommandPrefix = "{#"
	CommandSuffix = "}"
)
