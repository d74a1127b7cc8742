package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	environmentVariablePort           = "PORT"
	environmentVariableCatalogFile    = "CATALOG_FILE"
	environmentVariablePoolSize       = "POOL_SIZE"
	environmentVariableCellSize       = "CELL_SIZE"
	environmentVariableMaxRows        = "MAX_ROWS"
	environmentVariableMaxCols        = "MAX_COLS"
	environmentVariablePoolLayout     = "POOL_LAYOUT"
	environmentVariableViewportWidth  = "VIEWPORT_WIDTH"
	environmentVariableViewportHeight = "VIEWPORT_HEIGHT"
	environmentVariableRandomSeed     = "RANDOM_SEED"
	environmentVariableDebugGame      = "DEBUG_MESSAGES"
	environmentVariableCacheSec       = "CACHE_SECONDS"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	httpPort       int
	catalogFile    string
	poolSize       int
	cellSize       int
	maxRows        int
	maxCols        int
	poolLayout     string
	viewportWidth  int
	viewportHeight int
	seed           int64
	debugGame      bool
	cacheSec       int
}

const (
	defaultHTTPPort       = 8000
	defaultPoolSize       = 15
	defaultCellSize       = 50
	defaultMaxRows        = 100
	defaultMaxCols        = 100
	defaultPoolLayout     = poolLayoutScatter
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
	defaultCacheSec       = 60 * 60 // 1 hour
)

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePort,
		environmentVariableCatalogFile,
		environmentVariablePoolSize,
		environmentVariableCellSize,
		environmentVariableMaxRows,
		environmentVariableMaxCols,
		environmentVariablePoolLayout,
		environmentVariableViewportWidth,
		environmentVariableViewportHeight,
		environmentVariableRandomSeed,
		environmentVariableDebugGame,
		environmentVariableCacheSec,
	}
	fmt.Fprintf(fs.Output(), "Runs the server\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet("main", flag.ExitOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return ""
	}
	envValueOr := func(key, defaultValue string) string {
		if v := envValue(key); len(v) != 0 {
			return v
		}
		return defaultValue
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key)
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	envValueInt64 := func(key string) int64 {
		v1 := envValue(key)
		v2, err := strconv.ParseInt(v1, 10, 64)
		if err != nil {
			return 0
		}
		return v2
	}
	envPresent := func(key string) bool {
		_, ok := osLookupEnvFunc(key)
		return ok
	}
	fs.IntVar(&m.httpPort, "port", envValueInt(environmentVariablePort, defaultHTTPPort), "The TCP port for server http requests.")
	fs.StringVar(&m.catalogFile, "catalog-file", envValue(environmentVariableCatalogFile), "The yaml file of tile types and prices.  The embedded catalog is used if not specified.")
	fs.IntVar(&m.poolSize, "pool-size", envValueInt(environmentVariablePoolSize, defaultPoolSize), "The number of floating tiles each mosaic starts with.")
	fs.IntVar(&m.cellSize, "cell-size", envValueInt(environmentVariableCellSize, defaultCellSize), "The width and height of grid cells, in pixels.")
	fs.IntVar(&m.maxRows, "max-rows", envValueInt(environmentVariableMaxRows, defaultMaxRows), "The most rows a user can start a grid with.")
	fs.IntVar(&m.maxCols, "max-cols", envValueInt(environmentVariableMaxCols, defaultMaxCols), "The most columns a user can start a grid with.")
	fs.StringVar(&m.poolLayout, "pool-layout", envValueOr(environmentVariablePoolLayout, defaultPoolLayout), "How floating tiles are arranged: "+poolLayoutScatter+" (randomly across the viewport) or "+poolLayoutLattice+" (on a grid centered in the viewport).")
	fs.IntVar(&m.viewportWidth, "viewport-width", envValueInt(environmentVariableViewportWidth, defaultViewportWidth), "The width of the area floating tiles are scattered in, in pixels.")
	fs.IntVar(&m.viewportHeight, "viewport-height", envValueInt(environmentVariableViewportHeight, defaultViewportHeight), "The height of the area floating tiles are scattered in, in pixels.")
	fs.Int64Var(&m.seed, "seed", envValueInt64(environmentVariableRandomSeed), "The seed used to create random tiles.  The current time is used if zero.")
	fs.BoolVar(&m.debugGame, "debug-game", envPresent(environmentVariableDebugGame), "Logs message types in the console when messages are passed between components.")
	fs.IntVar(&m.cacheSec, "cache-sec", envValueInt(environmentVariableCacheSec, defaultCacheSec), "The number of seconds the catalog is cached.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc)
	fs.Parse(programArgs)
	return m
}
