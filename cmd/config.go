package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// EnginePriority selects the candidate ranking mode, SLA_FIRST or
	// COST_FIRST. Empty falls back to the engine default.
	EnginePriority string

	// EngineCutoffHour is the same-day processing cutoff hour (0-23).
	// Empty falls back to the engine default.
	EngineCutoffHour string
}
