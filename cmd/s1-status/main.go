package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/huandu/xstrings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/display"
	"github.com/vsariola/synthone/header"
	"github.com/vsariola/synthone/midicc"
	"github.com/vsariola/synthone/preset"
	"github.com/vsariola/synthone/status"
	"github.com/vsariola/synthone/version"
)

func main() {
	presetFile := flag.String("p", "", "Load the initial parameter values from a preset `file` instead of the factory bank.")
	factoryName := flag.String("f", "", "Start from the factory preset with this `name`. By default, the first factory preset is used.")
	scriptFile := flag.String("s", "", "Apply the changes listed in a YAML script `file` before the command line changes.")
	mapFile := flag.String("m", "", "Interpret the arguments as hex MIDI messages and translate them with the MIDI map `file`.")
	tmpl := flag.String("t", status.DefaultTemplate, "Template for the status lines; sprig functions are available. Fields: .Message, .Parameter, .Value.")
	sync := flag.Bool("sync", false, "Turn tempo sync on before applying the changes.")
	bpm := flag.Float64("bpm", 0, "Set the arpeggiator tempo before applying the changes.")
	seed := flag.Int64("seed", 0, "Seed for random preset selection; 0 picks a random seed.")
	list := flag.Bool("l", false, "List all the parameters and exit.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *list {
		listParameters()
		os.Exit(0)
	}
	logger := log.New(os.Stderr, "s1-status: ", 0)
	out, err := status.NewWriter(os.Stdout, *tmpl)
	if err != nil {
		logger.Fatal(err)
	}
	bank, err := openBank(*presetFile, *factoryName)
	if err != nil {
		logger.Fatal(err)
	}
	if *seed == 0 {
		*seed = rand.Int63()
	}
	h := header.New(display.New(nil), out, logger)
	if _, err := header.NewNavigator(h, bank, rand.New(rand.NewSource(*seed))); err != nil {
		logger.Fatal(err)
	}
	if *sync {
		h.UpdateUI(synthone.TempoSyncToArpRate, 1)
	}
	if *bpm > 0 {
		h.UpdateUI(synthone.ArpRate, *bpm)
	}
	if *scriptFile != "" {
		script, err := loadScript(*scriptFile)
		if err != nil {
			logger.Fatal(err)
		}
		if err := script.Run(h); err != nil {
			logger.Fatal(err)
		}
	}
	var ccMap *midicc.Map
	if *mapFile != "" {
		if ccMap, err = midicc.LoadMap(*mapFile); err != nil {
			logger.Fatal(err)
		}
	}
	retval := 0
	for _, arg := range flag.Args() {
		var err error
		if ccMap != nil {
			err = applyMIDI(h, ccMap, arg)
		} else {
			err = applyArg(h, arg)
		}
		if err != nil {
			logger.Printf("could not apply %q: %v", arg, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

// applyArg applies either a header action (next, prev, random, save) or a
// name=value parameter change.
func applyArg(h *header.Header, arg string) error {
	if a, ok := actionByName(h, arg); ok {
		a.Do()
		return nil
	}
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("expected name=value or an action (%v)", strings.Join(actionNames, ", "))
	}
	p, err := synthone.ParseParameter(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("invalid value for %v: %w", p, err)
	}
	h.UpdateUI(p, v)
	return nil
}

func applyMIDI(h *header.Header, m *midicc.Map, arg string) error {
	msg, err := midicc.ParseHex(arg)
	if err != nil {
		return err
	}
	c, ok := m.Translate(msg)
	if !ok {
		return nil // not for us
	}
	h.UpdateUI(c.Param, c.Value)
	return nil
}

func openBank(presetFile, factoryName string) (*preset.Bank, error) {
	if presetFile != "" {
		p, err := preset.Load(presetFile)
		if err != nil {
			return nil, err
		}
		return preset.NewBank([]preset.Preset{p})
	}
	bank, err := preset.Factory()
	if err != nil {
		return nil, err
	}
	if factoryName != "" {
		if _, err := bank.Find(factoryName); err != nil {
			return nil, fmt.Errorf("%w; factory presets are: %v", err, strings.Join(bank.Names(), ", "))
		}
	}
	return bank, nil
}

func listParameters() {
	caser := cases.Title(language.English)
	f := display.New(nil)
	for _, p := range synthone.Parameters() {
		shown := "status"
		if _, ok := f.Rule(p).(display.NoOp); ok {
			shown = "-"
		}
		fmt.Printf("%-34s %-40s %s\n", p, caser.String(splitCamel(p.String())), shown)
	}
}

// splitCamel turns "filterADSRMix" into "filter adsr mix".
func splitCamel(s string) string {
	return strings.ReplaceAll(xstrings.ToSnakeCase(s), "_", " ")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Prints the header status lines of Synth One parameter changes.\nUsage: %s [flags] [name=value | next | prev | random | save | hex MIDI message ...]\n", os.Args[0])
	flag.PrintDefaults()
}
