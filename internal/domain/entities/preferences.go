package entities

// Preferences regroupe les réglages persistés entre deux sessions.
// Les balises JSON reproduisent le format du fichier juniper_preferences.json
// livré avec les premières versions du jeu.
type Preferences struct {
	Language       string  `json:"language"`
	PlayerName     string  `json:"player_name"`
	LastGrid       int     `json:"last_grid"`
	LastTimeBudget float64 `json:"last_time_budget"`
}

// DefaultPreferences returns the values used when no preference file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:       "fr",
		PlayerName:     "Joueur",
		LastGrid:       20,
		LastTimeBudget: 10,
	}
}
