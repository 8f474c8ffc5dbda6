package commands

// Fixed console texts of a quote session.
const (
	MessageWelcome = "Welcome to Package Express. Please follow the instructions below."

	PromptWeight = "Please enter the package weight:"
	PromptWidth  = "Please enter the package width:"
	PromptHeight = "Please enter the package height:"
	PromptLength = "Please enter the package length:"

	MessageInvalidNumber  = "Invalid input. Please enter a valid number."
	MessageInvalidNumbers = "Invalid input. Please enter valid numbers."

	MessageTooHeavy = "Package too heavy to be shipped via Package Express. Have a good day."
	MessageTooBig   = "Package too big to be shipped via Package Express."

	// MessageQuote is formatted with the quote's two-decimal text.
	MessageQuote    = "Your estimated total for shipping this package is: $%s"
	MessageThankYou = "Thank you!"
)
