package entities

// Language describes one installed locale, as listed by the language selector.
type Language struct {
	Code string // code BCP 47, ex. "fr"
	Name string // nom affiché, ex. "Français"
}
