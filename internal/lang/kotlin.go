package lang

// kotlin is the explicit no-op language: Kotlin templates are used as-is.
type kotlin struct{}

func (kotlin) rewrite(string, string) error {
	return nil
}

func (kotlin) installCommand(string) (Command, bool) {
	return Command{}, false
}
