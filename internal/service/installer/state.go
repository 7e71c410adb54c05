package installer

// EnvFile mirrors the variables written to the runtime .env file.
// Booleans are strings so that "false" survives marshalling.
type EnvFile struct {
	EnableCLI         string `env:"DWIGHT_ENABLE_CLI"`
	EnableTelegram    string `env:"DWIGHT_ENABLE_TELEGRAM"`
	TelegramToken     string `env:"DWIGHT_TELEGRAM_TOKEN"`
	TelegramOwnerID   string `env:"DWIGHT_TELEGRAM_OWNER_ID"`
	ContextWindowSize int    `env:"DWIGHT_CONTEXT_WINDOW_SIZE"`
	Debug             string `env:"DWIGHT_DEBUG"`
}

type InstallState struct {
	Channel string
	Env     EnvFile
}

func NewInstallState() *InstallState {
	return &InstallState{}
}

func (s *InstallState) wantsTelegram() bool {
	return s.Channel == channelTelegram || s.Channel == channelBoth
}
