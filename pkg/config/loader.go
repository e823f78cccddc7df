package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry is the cached result of parsing one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	entries   sync.Map // reflect.Type -> *entry
	dotenvRun sync.Once
)

// Load fills v from environment variables described by its `env` and
// `envDefault` struct tags. A .env file in the working directory is read once
// before the first parse; a missing file is not an error.
//
// Each config type is parsed once per process. Later calls copy the cached
// value, so changes to the environment after the first Load are not seen.
// A failed parse is cached as well.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvRun.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	raw, _ := entries.LoadOrStore(key, &entry{})
	e := raw.(*entry)

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %s: %v", reflect.TypeFor[T](), err))
	}
}
