package errors

// Error codes for the leek toolchain. They appear in diagnostics and in
// `leek check` output.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors
// I0001-I0099: Informational

const (
	// E0100: Input does not match the grammar
	ErrorSyntax = "E0100"

	// E0101: A character that starts no token
	ErrorInvalidToken = "E0101"

	// E0102: Integer literal does not fit in 64 bits
	ErrorIntegerRange = "E0102"

	// E0900: An edit range that does not resolve against the document
	ErrorEditRange = "E0900"

	// I0001: A variable declaration was found
	InfoDeclaration = "I0001"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Input does not match the grammar"
	case ErrorInvalidToken:
		return "Character is not part of any token"
	case ErrorIntegerRange:
		return "Integer literal is out of range"
	case ErrorEditRange:
		return "Edit range lies outside the document"
	case InfoDeclaration:
		return "Variable declaration"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == "":
		return "Unknown"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	case code[0] == 'I':
		return "Information"
	default:
		return "Unknown"
	}
}
