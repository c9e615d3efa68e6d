package util

import (
	"fmt"
	"strings"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	"github.com/MRUIAW/ReplayCraft/lib/backend/filebackend"
	"github.com/MRUIAW/ReplayCraft/lib/propdb"
	"github.com/MRUIAW/ReplayCraft/lib/serializer"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the common store flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "store"
	cmd.PersistentFlags().String(key, "replaycraft.store.json", WrapString("Path of the JSON file backing the property store"))

	key = "database"
	cmd.PersistentFlags().String(key, "default", WrapString("Name of the database inside the store"))

	key = "max-chunk-size"
	cmd.PersistentFlags().Int(key, propdb.DefaultMaxChunkSize, WrapString("Maximum length of a single stored chunk"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("replaycraft")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.ISerializer[string], error) {
	switch viper.GetString("serializer") {
	case "raw":
		return serializer.NewRawSerializer(), nil
	case "json":
		return serializer.NewJSONSerializer[string](), nil
	case "gob":
		return serializer.NewGOBSerializer[string](), nil
	default:
		return nil, fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}
}

// GetBackend opens the file-backed property store from configuration
func GetBackend() (backend.IBackend, error) {
	return filebackend.NewFileBackend(viper.GetString("store"), nil)
}

// GetDatabase opens the configured database on the configured backend
func GetDatabase() (propdb.IDatabase[string], error) {
	s, err := GetSerializer()
	if err != nil {
		return nil, err
	}

	b, err := GetBackend()
	if err != nil {
		return nil, err
	}

	return propdb.New[string](
		viper.GetString("database"),
		b,
		s,
		&propdb.Options{MaxChunkSize: viper.GetInt("max-chunk-size")},
	)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
