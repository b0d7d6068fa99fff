package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Game: GameConfig{
			Columns:     3,
			Rows:        3,
			MaxDieValue: 6,
		},
		Driver: DriverConfig{
			Games: 1,
		},
	}
}
