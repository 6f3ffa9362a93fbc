package serve

import (
	"strings"

	"github.com/joho/godotenv"
	cmdUtil "github.com/shaik-zeeshan/circle/cmd/util"
	"github.com/shaik-zeeshan/circle/lib/procstore"
	"github.com/shaik-zeeshan/circle/rpc/common"
	"github.com/shaik-zeeshan/circle/rpc/serializer"
	"github.com/shaik-zeeshan/circle/rpc/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the circle daemon",
		Long:    `Start the circle daemon with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is CIRCLE_<flag> (e.g. CIRCLE_TIMEOUT=15)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	// add flags
	key := "socket"
	ServeCmd.PersistentFlags().String(key, common.DefaultSocketPath, cmdUtil.WrapString("Path of the Unix domain socket to bind. A stale socket file at this path is removed after a liveness probe; a live one makes startup fail"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, common.DefaultTimeoutSecond, cmdUtil.WrapString("Per-connection read/write deadline in seconds. 0 disables the deadline"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	serveCmdConfig.SocketPath = viper.GetString("socket")
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	// Init loggers
	common.InitLoggers(*serveCmdConfig)

	serv := server.NewSocketServer(
		*serveCmdConfig,
		serializer.NewJSONSerializer(),
	)

	// Register the process-store handlers before accepting traffic
	procstore.NewStore().RegisterHandlers(serv)

	return serv.Serve()
}

// initConfig reads in serveCmdConfig file and ENV variables if set.
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("circle")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}
