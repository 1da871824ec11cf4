package rabbitmq_common

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultReconnectInterval - как часто проверять, не закрылось ли соединение.
const DefaultReconnectInterval = 10 * time.Second

// ConnectionManager держит одно соединение на процесс и переподключается в фоне.
// Каналы открываются поверх него по требованию.
type ConnectionManager struct {
	url       string
	interval  time.Duration
	dial      func(url string) (*amqp.Connection, error)
	logger    Logger
	mutex     sync.RWMutex
	conn      *amqp.Connection
	stop      context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewConnectionManager подключается сразу; если первое подключение не удалось,
// возвращает ошибку, а не ждет брокер бесконечно.
func NewConnectionManager(url string, logger Logger) (*ConnectionManager, error) {
	if url == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if logger == nil {
		logger = NewNoopLogger()
	}
	m := &ConnectionManager{
		url:      url,
		interval: DefaultReconnectInterval,
		dial:     amqp.Dial,
		logger:   logger,
		done:     make(chan struct{}),
	}
	if _, err := m.connection(); err != nil {
		return nil, fmt.Errorf("initial connection failed: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.stop = cancel
	go m.watch(ctx)
	return m, nil
}

func (m *ConnectionManager) connection() (*amqp.Connection, error) {
	m.mutex.RLock()
	if m.conn != nil && !m.conn.IsClosed() {
		conn := m.conn
		m.mutex.RUnlock()
		return conn, nil
	}
	m.mutex.RUnlock()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	// другой поток мог уже переподключиться
	if m.conn != nil && !m.conn.IsClosed() {
		return m.conn, nil
	}

	m.logger.Debug("rabbitmq: connecting")
	conn, err := m.dial(m.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}
	m.conn = conn
	m.logger.Info("rabbitmq: connected")
	return conn, nil
}

// Channel открывает новый канал на общем соединении.
func (m *ConnectionManager) Channel() (*amqp.Channel, error) {
	conn, err := m.connection()
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return ch, nil
}

func (m *ConnectionManager) watch(ctx context.Context) {
	defer close(m.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		m.mutex.RLock()
		closed := m.conn == nil || m.conn.IsClosed()
		m.mutex.RUnlock()
		if !closed {
			continue
		}

		m.logger.Warn("rabbitmq: connection lost, reconnecting")
		if _, err := m.connection(); err != nil {
			m.logger.Error(err, "rabbitmq: reconnect failed")
		}
	}
}

// Close останавливает переподключение и закрывает соединение.
func (m *ConnectionManager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		if m.stop != nil {
			m.stop()
			<-m.done
		}

		m.mutex.Lock()
		defer m.mutex.Unlock()
		if m.conn != nil && !m.conn.IsClosed() {
			err = m.conn.Close()
		}
		m.conn = nil
	})
	return err
}
