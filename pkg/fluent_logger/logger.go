package fluentlogger

import (
	"errors"
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config - куда слать логи. Тег формирует адаптер, поэтому префикса здесь нет.
type Config struct {
	Host         string // "127.0.0.1" или "fluent-bit" в Docker
	Port         int    // обычно 24224
	Async        bool
	WriteTimeout time.Duration
}

// NewClient создает клиента Fluent Bit. Пинга нет: соединение проверяется
// только при первой отправке.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.Host == "" {
		return nil, errors.New("fluent bit host is required")
	}

	client, err := fluent.New(fluent.Config{
		FluentHost:   cfg.Host,
		FluentPort:   cfg.Port,
		Async:        cfg.Async,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent logger: %w", err)
	}
	return client, nil
}
