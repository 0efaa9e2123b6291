package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"partner/internal/entities"
	orderservice "partner/internal/service/order"
	"partner/pkg/logger"
	retrierconfig "partner/pkg/retrier"
	"partner/pkg/retrier/backoff_adapter"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	maxMessageSize = 64 << 10

	// сеанс дольше stableSession сбрасывает паузу переподключения
	stableSession = pongWait
)

// joinMessage первое сообщение после подключения: подписка на комнату партнёра.
type joinMessage struct {
	Event     string `json:"event"`
	PartnerID string `json:"partnerId"`
}

// Listener держит сокет с платформой и передаёт события заказов диспетчеру.
// Обрыв соединения переподключается с экспоненциальной паузой.
type Listener struct {
	url        string
	dialer     *websocket.Dialer
	creds      credentials
	dispatcher Dispatcher
	retrier    retrier
	reconnect  backoff.BackOff
	log        handlerLogger
	timeout    time.Duration
}

func New(
	url string,
	creds credentials,
	dispatcher Dispatcher,
	log handlerLogger,
	retryConfig retrierconfig.Config,
	processTimeout time.Duration,
) *Listener {
	return &Listener{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		creds:      creds,
		dispatcher: dispatcher,
		retrier:    backoff_adapter.New(retryConfig),
		reconnect: backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(retryConfig.InitialInterval),
			backoff.WithMaxInterval(retryConfig.MaxInterval),
			backoff.WithMaxElapsedTime(0),
			backoff.WithRandomizationFactor(retryConfig.Randomization),
			backoff.WithMultiplier(retryConfig.Multiplier),
		),
		log:     log.With(logger.NewField("listener", "realtime")),
		timeout: processTimeout,
	}
}

// Run блокирующий цикл до отмены ctx или исчерпания ретраев подключения.
func (l *Listener) Run(ctx context.Context) error {
	for {
		var conn *websocket.Conn

		err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			c, err := l.connect(ctx)
			if err != nil {
				l.log.Warn("realtime connect failed", logger.NewField("error", err))
				return err
			}
			conn = c
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("realtime connect: %w", err)
		}

		l.log.Info("realtime connected")

		started := time.Now()
		err = l.serve(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Since(started) >= stableSession {
			l.reconnect.Reset()
		}

		wait := l.reconnect.NextBackOff()
		l.log.Warn("realtime connection lost",
			logger.NewField("error", err),
			logger.NewField("retry_in", wait),
		)
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l *Listener) connect(ctx context.Context) (*websocket.Conn, error) {
	token, err := l.creds.Token()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := l.dialer.DialContext(ctx, l.url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", l.url, err)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(joinMessage{Event: "joinPartner", PartnerID: l.creds.PartnerID()})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("join partner room: %w", err)
	}

	return conn, nil
}

// serve читает события, пока соединение живо.
func (l *Listener) serve(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go l.keepAlive(ctx, conn, done)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		event, err := orderservice.DecodeEvent(raw)
		if err != nil {
			l.log.Warn("realtime bad message", logger.NewField("error", err))
			continue
		}

		l.dispatch(ctx, event)
	}
}

func (l *Listener) dispatch(ctx context.Context, event entities.OrderEvent) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	err := l.dispatcher.ProcessEvent(ctx, event)
	if err != nil && !errors.Is(err, context.Canceled) {
		l.log.Warn("realtime event failed",
			logger.NewField("event", event.Type),
			logger.NewField("order", event.OrderID),
			logger.NewField("error", err),
		)
		return
	}

	l.log.Debug("realtime event processed",
		logger.NewField("event", event.Type),
		logger.NewField("order", event.OrderID),
	)
}

// keepAlive шлёт ping и закрывает соединение при отмене ctx,
// чтобы ReadMessage вернулся.
func (l *Listener) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
