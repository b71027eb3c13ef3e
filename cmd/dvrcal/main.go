// Command dvrcal inspects and edits the device calibration store and
// dumps the metrics the render pipeline would resolve from it.
//
// Usage:
//
//	dvrcal [flags] profile create <name> [device-model]
//	dvrcal [flags] profile activate <profile-id>
//	dvrcal [flags] profile list
//	dvrcal [flags] set <property> <value>
//	dvrcal [flags] get <property>
//	dvrcal [flags] list
//	dvrcal [flags] metrics
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GhostdroidR/frameworks-native/internal/hmd"
	"github.com/GhostdroidR/frameworks-native/internal/props"
	"github.com/GhostdroidR/frameworks-native/internal/props/propdb"
)

var (
	dbPath      = flag.String("db", "calibration.db", "Path to the calibration database")
	useEnv      = flag.Bool("env", false, "Resolve properties from the environment instead of the database")
	width       = flag.Int("width", 1080, "Panel width in pixels for the metrics dump")
	height      = flag.Int("height", 1920, "Panel height in pixels for the metrics dump")
	undistorted = flag.Bool("undistorted", false, "Dump pass-through (identity distortion) metrics")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	if err := run(args); err != nil {
		log.Fatalf("dvrcal: %v", err)
	}
}

func run(args []string) error {
	// Metrics resolution works against any source; everything else needs
	// the database.
	if args[0] == "metrics" {
		src, cleanup, err := openSource()
		if err != nil {
			return err
		}
		defer cleanup()
		return dumpMetrics(src)
	}

	if *useEnv {
		return fmt.Errorf("-env only applies to the metrics command")
	}
	db, err := propdb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "profile":
		return runProfile(db, args[1:])
	case "set":
		if len(args) != 3 {
			usage()
		}
		return setProperty(db, args[1], args[2])
	case "get":
		if len(args) != 2 {
			usage()
		}
		fmt.Println(db.Get(args[1]))
		return nil
	case "list":
		return listProperties(db)
	default:
		usage()
	}
	return nil
}

func openSource() (props.Source, func(), error) {
	if *useEnv {
		return props.Env{}, func() {}, nil
	}
	db, err := propdb.Open(*dbPath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

func runProfile(db *propdb.DB, args []string) error {
	if len(args) == 0 {
		usage()
	}
	switch args[0] {
	case "create":
		if len(args) < 2 || len(args) > 3 {
			usage()
		}
		profile := &propdb.Profile{Name: args[1]}
		if len(args) == 3 {
			profile.DeviceModel = args[2]
		}
		if err := db.CreateProfile(profile); err != nil {
			return err
		}
		log.Printf("created profile %s (%s)", profile.ProfileID, profile.Name)
		return nil
	case "activate":
		if len(args) != 2 {
			usage()
		}
		if err := db.ActivateProfile(args[1]); err != nil {
			return err
		}
		log.Printf("activated profile %s", args[1])
		return nil
	case "list":
		profiles, err := db.ListProfiles()
		if err != nil {
			return err
		}
		return printJSON(profiles)
	default:
		usage()
	}
	return nil
}

func setProperty(db *propdb.DB, name, value string) error {
	profile, err := db.ActiveProfile()
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no active profile; create one with 'dvrcal profile create'")
	}
	if err := db.SetProperty(profile.ProfileID, name, value); err != nil {
		return err
	}
	log.Printf("set %s=%s on profile %s", name, value, profile.Name)
	return nil
}

func listProperties(db *propdb.DB) error {
	profile, err := db.ActiveProfile()
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no active profile")
	}
	properties, err := db.Properties(profile.ProfileID)
	if err != nil {
		return err
	}
	return printJSON(properties)
}

func dumpMetrics(src props.Source) error {
	var headMount hmd.HeadMountMetrics
	if *undistorted {
		headMount = hmd.DefaultUndistortedHeadMountMetrics(src)
	} else {
		headMount = hmd.DefaultHeadMountMetrics(src)
	}
	display := hmd.DisplayMetricsFrom(src, *width, *height)
	return printJSON(metricsView{
		HeadMount: newHeadMountView(headMount),
		Display:   newDisplayView(display),
	})
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: dvrcal [flags] <command>

Commands:
  profile create <name> [device-model]   Create a calibration profile
  profile activate <profile-id>          Make a profile the active one
  profile list                           List profiles as JSON
  set <property> <value>                 Set a property on the active profile
  get <property>                         Print a raw property value
  list                                   List the active profile's properties
  metrics                                Dump resolved metrics as JSON

Flags:
`)
	flag.PrintDefaults()
	os.Exit(2)
}
