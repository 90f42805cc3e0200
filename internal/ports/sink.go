package ports

// Sink is an output surface: a terminal writer, or a pane of the console.
type Sink interface {
	Replace(text string)
	Append(text string)
}
