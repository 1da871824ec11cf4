package logger_adapter

import (
	"fmt"

	"github.com/wojg58/Thursday/internal/core/port"
	"github.com/wojg58/Thursday/pkg/rabbitmq/rabbitmq_common"
)

// RabbitMQLogger отдает LoggerPort пакетам pkg/rabbitmq, которые принимают
// пары ключ-значение.
type RabbitMQLogger struct {
	logger port.LoggerPort
}

var _ rabbitmq_common.Logger = (*RabbitMQLogger)(nil)

func NewRabbitMQLogger(logger port.LoggerPort) *RabbitMQLogger {
	return &RabbitMQLogger{logger: logger}
}

func (l *RabbitMQLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, kvToFields(keysAndValues))
}

func (l *RabbitMQLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, kvToFields(keysAndValues))
}

func (l *RabbitMQLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, kvToFields(keysAndValues))
}

func (l *RabbitMQLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, err, kvToFields(keysAndValues))
}

// kvToFields: нечетный хвост попадает под ключ "extra".
func kvToFields(kv []interface{}) port.Fields {
	if len(kv) == 0 {
		return nil
	}
	fields := make(port.Fields, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	if len(kv)%2 == 1 {
		fields["extra"] = kv[len(kv)-1]
	}
	return fields
}
