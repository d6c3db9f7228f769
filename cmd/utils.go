package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replacer = strings.NewReplacer(".", "_", "-", "_")

type argType interface {
	string | bool | int | int64 | time.Duration
}

func envName[T argType](cfg boundEnvVar[T]) string {
	if cfg.Env != nil {
		return *cfg.Env
	}
	return strings.ToUpper(replacer.Replace(cfg.Name))
}

// bindEnvMap registers a persistent flag for every entry of m. The current value of the bound variable
// is the flag default unless the matching environment variable is set, in which case the environment wins.
func bindEnvMap[T argType](cmd *cobra.Command, m map[*T]boundEnvVar[T]) {
	flags := cmd.PersistentFlags()
	for v, cfg := range m {
		env := envName(cfg)
		desc := fmt.Sprintf("[%s] %s", env, cfg.Description)
		_ = viper.BindEnv(cfg.Name, env)
		_, fromEnv := os.LookupEnv(env)

		switch vt := any(v).(type) {
		case *string:
			def := *vt
			if fromEnv {
				def = viper.GetString(cfg.Name)
			}
			if cfg.Short == nil {
				flags.StringVar(vt, cfg.Name, def, desc)
			} else {
				flags.StringVarP(vt, cfg.Name, *cfg.Short, def, desc)
			}
		case *bool:
			def := *vt
			if fromEnv {
				def = viper.GetBool(cfg.Name)
			}
			if cfg.Short == nil {
				flags.BoolVar(vt, cfg.Name, def, desc)
			} else {
				flags.BoolVarP(vt, cfg.Name, *cfg.Short, def, desc)
			}
		case *int:
			def := *vt
			if fromEnv {
				def = viper.GetInt(cfg.Name)
			}
			if cfg.Short == nil {
				flags.CountVar(vt, cfg.Name, desc)
			} else {
				flags.CountVarP(vt, cfg.Name, *cfg.Short, desc)
			}
			_ = flags.Lookup(cfg.Name).Value.Set(strconv.Itoa(def))
		case *int64:
			def := *vt
			if fromEnv {
				def = viper.GetInt64(cfg.Name)
			}
			if cfg.Short == nil {
				flags.Int64Var(vt, cfg.Name, def, desc)
			} else {
				flags.Int64VarP(vt, cfg.Name, *cfg.Short, def, desc)
			}
		case *time.Duration:
			def := *vt
			if fromEnv {
				def = viper.GetDuration(cfg.Name)
			}
			if cfg.Short == nil {
				flags.DurationVar(vt, cfg.Name, def, desc)
			} else {
				flags.DurationVarP(vt, cfg.Name, *cfg.Short, def, desc)
			}
		default:
			log.Panicf("command-args parsing error: unhandled default case for type %T", vt)
		}

		_ = viper.BindPFlag(cfg.Name, flags.Lookup(cfg.Name))

		if cfg.Hidden {
			_ = flags.MarkHidden(cfg.Name)
		}
	}
}
