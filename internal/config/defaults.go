package config

const (
	defaultFilmsCSV  = "~/.local/share/whitemask/films.csv"
	defaultCatalog   = "~/.local/share/whitemask/fulldump.jsonl"
	defaultOutputDir = "~/.local/share/whitemask/output"
	defaultLogDir    = "~/.local/share/whitemask/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultAlpha                = 0.5
	defaultMinLikedFreq         = 2
	defaultMinDirectorDiversity = 2
	defaultBaselineCap          = 15000
	defaultFingerprintReviews   = 10

	defaultScoreThreshold   = 20.0
	defaultDrearyPenalty    = 15.0
	defaultLegacyBonus      = 10.0
	defaultDiscoveryReviews = 3
	defaultCastCap          = 5
	defaultEvidenceCap      = 5
)

// Default returns a Config populated with repository defaults. The pipeline
// constants mirror the tuned values the scoring rules were calibrated with.
func Default() Config {
	return Config{
		Paths: Paths{
			FilmsCSV:  defaultFilmsCSV,
			Catalog:   defaultCatalog,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Fingerprint: Fingerprint{
			Alpha:                defaultAlpha,
			MinLikedFreq:         defaultMinLikedFreq,
			MinDirectorDiversity: defaultMinDirectorDiversity,
			BaselineCap:          defaultBaselineCap,
			ReviewCap:            defaultFingerprintReviews,
		},
		Discovery: Discovery{
			ScoreThreshold: defaultScoreThreshold,
			DrearyPenalty:  defaultDrearyPenalty,
			LegacyBonus:    defaultLegacyBonus,
			ReviewCap:      defaultDiscoveryReviews,
			CastCap:        defaultCastCap,
			EvidenceCap:    defaultEvidenceCap,
			DrearyTokens: []string{
				"meditative", "contemplative", "unhurried", "pacing", "slow burn",
			},
			RegionalBoost: map[string]float64{
				"Japan":       5.0,
				"South Korea": 5.0,
				"Hong Kong":   5.0,
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
