package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetUploadsPath() string
	GetContextWindowSize() int
	IsTelegramSelected() bool
	IsCLISelected() bool
}

type AudioConfig interface {
	GetMaxSamples() int
	GetSampleRate() int
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
