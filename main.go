package main

import (
	"flag"
	"github.com/fernandosanchezjr/detstream/config"
	"github.com/fernandosanchezjr/detstream/generators/lcg"
	"github.com/fernandosanchezjr/detstream/generators/pure"
	"github.com/fernandosanchezjr/detstream/generators/source"
	"github.com/fernandosanchezjr/detstream/logging"
	"github.com/fernandosanchezjr/detstream/records"
	"github.com/fernandosanchezjr/detstream/store"
	"github.com/fernandosanchezjr/detstream/utils"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"runtime/pprof"
	"runtime/trace"
	"time"
)

var cpuProfile bool
var tracing bool
var watch bool
var resume bool
var count int
var rawCount int
var rawSource string
var exitChannel chan os.Signal

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
	flag.BoolVar(&watch, "watch", watch, "regenerate when the config file changes")
	flag.BoolVar(&resume, "resume", resume, "resume stream states from the store")
	flag.IntVar(&count, "count", 0, "records to generate (overrides config)")
	flag.IntVar(&rawCount, "raw", 0, "emit raw values instead of records")
	flag.StringVar(&rawSource, "source", "mux", "raw value source: lcg, xoshiro, mt or mux")
	exitChannel = make(chan os.Signal, 1)
}

func wait() {
	signal.Notify(exitChannel, os.Interrupt)
	signal.Notify(exitChannel, os.Kill)
	select {
	case <-exitChannel:
		return
	}
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Warn("Using default config")
		return config.Default()
	}
	return cfg
}

func newSource() source.Source {
	switch rawSource {
	case "lcg":
		return source.NewLcg()
	case "xoshiro":
		return source.NewXoshiro()
	case "mt":
		return source.NewMT()
	default:
		return source.NewMux()
	}
}

func emitRaw() {
	var src = newSource()
	for i := 0; i < rawCount; i++ {
		log.WithField("value", utils.Value64(src.Next())).Println("Raw")
	}
}

func restore(st *store.Store, name string, handle interface{ Restore(uint64) }) {
	state, found, err := st.LoadState(name)
	if err != nil {
		log.WithError(err).WithField("stream", name).Warn("Restore failed")
		return
	}
	if found {
		handle.Restore(state)
		log.WithFields(log.Fields{
			"stream": name,
			"state":  utils.Value64(state),
		}).Info("Resumed")
	}
}

func save(st *store.Store, name string, state uint64) {
	if err := st.SaveState(name, state); err != nil {
		log.WithError(err).WithField("stream", name).Warn("Save failed")
	}
}

func generate(cfg *config.Config, st *store.Store) {
	var recordCount = cfg.Count
	if count > 0 {
		recordCount = count
	}
	if recordCount == 0 {
		recordCount = config.DefaultCount
	}

	var ids = lcg.New[records.IDStream](cfg.Seed("ids"))
	var flags = lcg.New[records.FlagStream](cfg.Seed("flags"))
	if st != nil && resume {
		restore(st, "ids", ids)
		restore(st, "flags", flags)
	}
	var bank = pure.Bank{pure.State(ids.State()), pure.State(flags.State())}

	var started = time.Now()
	var statefulSum uint64
	for i := 0; i < recordCount; i++ {
		var nested = records.NewNested(ids, flags)
		log.WithFields(log.Fields{
			"first":        nested.First.ID,
			"first-flags":  nested.First.Flags,
			"second":       nested.Second.ID,
			"second-flags": nested.Second.Flags,
		}).Info("Record")
		statefulSum += uint64(nested.First.ID) + uint64(nested.Second.ID)
	}
	var elapsed = time.Since(started)

	var step = pure.Replicate[pure.Bank, records.Nested](records.NextNested, recordCount)(bank)
	var pureSum uint64
	for _, nested := range step.Value {
		pureSum += uint64(nested.First.ID) + uint64(nested.Second.ID)
	}
	if pureSum != statefulSum {
		log.WithFields(log.Fields{
			"stateful": utils.Value64(statefulSum),
			"pure":     utils.Value64(pureSum),
		}).Error("Mode checksum mismatch")
	} else {
		log.WithField("checksum", utils.Value64(statefulSum)).Info("Modes agree")
	}
	log.WithFields(log.Fields{
		"records": recordCount,
		"rate":    utils.GenRate(float64(recordCount) / elapsed.Seconds()),
	}).Info("Generated")

	if st != nil {
		save(st, "ids", ids.State())
		save(st, "flags", flags.State())
	}
}

func main() {
	flag.Parse()
	logging.SetupLogger()
	if cpuProfile {
		f, err := os.Create("detstream.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("detstream.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}
	if rawCount > 0 {
		emitRaw()
		return
	}
	cfg := loadConfig()
	var st *store.Store
	storePath := cfg.Store
	if storePath == "" {
		storePath = store.DefaultPath()
	}
	if s, err := store.Open(storePath); err != nil {
		log.WithError(err).Warn("Store unavailable")
	} else {
		st = s
		defer func() {
			_ = st.Close()
		}()
	}
	generate(cfg, st)
	if watch {
		watcher, err := utils.NewFileWatcher(config.ConfigPath(), func() {
			generate(loadConfig(), st)
		})
		if err != nil {
			log.WithError(err).Fatal("Config watcher")
		}
		defer func() {
			_ = watcher.Close()
		}()
		wait()
	}
}
