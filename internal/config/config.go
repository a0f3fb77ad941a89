package config

import (
	"errors"
	"flag"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
)

type Config interface {
	InputPath() string
	ReportRoot() string
	ReportDirectory() string
	LogLevel() string
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	InputPath       string `env:"LEDGER_INPUT"`
	ReportRoot      string `env:"REPORT_ROOT"`
	ReportDirectory string `env:"REPORT_DIRECTORY"`
	LogLevel        string `env:"LOG_LEVEL"`
}

const (
	defaultReportRoot      = "."
	defaultReportDirectory = "reports"
	defaultLogLevel        = "info"
)

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			ReportRoot:      defaultReportRoot,
			ReportDirectory: defaultReportDirectory,
			LogLevel:        defaultLogLevel,
		},
		arguments: os.Args[1:],
	}
}

// LoadDotEnv загружает переменные окружения из файлов filenames (по умолчанию .env).
// Отсутствующие файлы пропускаются, уже заданные переменные окружения не перезаписываются.
func (b *Builder) LoadDotEnv(filenames ...string) *Builder {
	if b.err != nil {
		return b
	}

	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			b.err = err

			return b
		}
	}

	return b
}

func (b *Builder) LoadEnv() *Builder {
	if b.err != nil {
		return b
	}

	b.err = env.Parse(b.parameters)

	return b
}

func (b *Builder) LoadFlags() *Builder {
	if b.err != nil {
		return b
	}

	flags := flag.NewFlagSet("ledger", flag.ContinueOnError)
	flags.StringVar(&b.parameters.InputPath, "i", b.parameters.InputPath, "путь к JSON-файлу с пакетом транзакций (по умолчанию stdin)")
	flags.StringVar(&b.parameters.ReportRoot, "o", b.parameters.ReportRoot, "корневой каталог хранилища отчетов")
	flags.StringVar(&b.parameters.LogLevel, "l", b.parameters.LogLevel, "уровень логирования")
	b.err = flags.Parse(b.arguments)

	return b
}

func (b *Builder) Build() (Config, error) {
	return b, b.err
}

func (b *Builder) InputPath() string {
	return b.parameters.InputPath
}

func (b *Builder) ReportRoot() string {
	return b.parameters.ReportRoot
}

func (b *Builder) ReportDirectory() string {
	return b.parameters.ReportDirectory
}

func (b *Builder) LogLevel() string {
	return b.parameters.LogLevel
}
