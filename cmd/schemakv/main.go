package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/edgekv/schemakv/internal/config"
	"github.com/edgekv/schemakv/pkg/db/pebble"
	"github.com/edgekv/schemakv/pkg/log"
	"github.com/edgekv/schemakv/pkg/schema"
	"github.com/edgekv/schemakv/pkg/store"
)

// entries is the schema the tool operates on: UTF-8 string keys and values.
var entries = schema.New[string, string]("entries", schema.String{}, schema.String{})

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file")
	dbPath := flag.String("db", "", "database directory (overrides config)")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Path = *dbPath
	}

	level, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", cfg.LogLevel, err)
		os.Exit(1)
	}
	loggerType := log.ConsoleLogger
	if cfg.LogJSON {
		loggerType = log.JSONLogger
	}
	log.Init(log.Options{LogLevel: level, Type: loggerType})
	logger := log.Storage

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	kv, err := pebble.NewKVStore(pebble.Options{Path: cfg.Path, Sync: cfg.Sync})
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Path).Msg("open store")
	}
	defer kv.Close()

	if err := run(store.New[string, string](kv, entries), flag.Args()); err != nil {
		var dbErr *store.DBError
		if errors.As(err, &dbErr) {
			logger.Error().Object("db_error", dbErr).Msg("command failed")
		} else {
			logger.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

func run(st *store.Store[string, string], args []string) error {
	switch cmd := args[0]; cmd {
	case "put":
		if len(args) != 3 {
			return fmt.Errorf("usage: put <key> <value>")
		}
		return st.Put(args[1], args[2])

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get <key>")
		}
		value, found, err := st.Get(args[1])
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Println(value)
		return nil

	case "del":
		if len(args) != 2 {
			return fmt.Errorf("usage: del <key>")
		}
		return st.Delete(args[1])

	case "list":
		var (
			iter *store.Iterator[string, string]
			err  error
		)
		if len(args) > 1 {
			iter, err = st.PrefixIterator(args[1])
		} else {
			iter, err = st.Iterator(store.Start[string]())
		}
		if err != nil {
			return err
		}
		defer iter.Close()

		for iter.Next() {
			key, err := iter.Key()
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad key: %v\n", err)
				continue
			}
			value, err := iter.Value()
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad value under %q: %v\n", key, err)
				continue
			}
			fmt.Printf("%s=%s\n", key, value)
		}
		return iter.Err()

	case "stats":
		stats, err := st.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("size_on_disk: %d\n", stats.SizeOnDisk)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: schemakv [flags] <command> [args]

commands:
  put <key> <value>   write a value (overwrites)
  get <key>           read a value
  del <key>           delete a key
  list [prefix]       list entries, optionally under a key prefix
  stats               print store statistics

flags:
`)
	flag.PrintDefaults()
}
