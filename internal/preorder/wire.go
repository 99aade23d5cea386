package preorder

import (
	"go.uber.org/zap"

	"greencross/internal/config"
	kafkainfra "greencross/internal/infrastructure/kafka"
	smtpinfra "greencross/internal/infrastructure/smtp"
	"greencross/internal/preorder/controller"
	"greencross/internal/preorder/message"
	"greencross/internal/preorder/relay"
	"greencross/internal/preorder/usecase"
)

// NewModule wires the preorder endpoint. The returned close func releases the
// relay's connections and must be called on shutdown.
func NewModule(cfg *config.Config, logger *zap.Logger) (*controller.Controller, func() error, error) {
	r, closeRelay, err := NewRelay(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	uc := usecase.NewSubmitPreorderUseCase(message.NewComposer(cfg.SMTP.To), r, logger)

	return controller.NewController(uc, logger), closeRelay, nil
}

func NewRelay(cfg *config.Config, logger *zap.Logger) (relay.Relay, func() error, error) {
	noop := func() error { return nil }
	relayLogger := logger.With(zap.String("relay", cfg.Relay.Driver))

	switch cfg.Relay.Driver {
	case relay.DriverSMTP:
		client, err := smtpinfra.NewClient(cfg.SMTP)
		if err != nil {
			return nil, nil, err
		}
		return relay.NewSMTPRelay(client, cfg.SMTP.From, relayLogger), noop, nil

	case relay.DriverKafka:
		writer := kafkainfra.NewWriter(cfg.Kafka)
		return relay.NewKafkaRelay(writer, relayLogger), writer.Close, nil

	case relay.DriverLog:
		return relay.NewLogRelay(relayLogger), noop, nil
	}

	return nil, nil, relay.UnknownDriverError(cfg.Relay.Driver)
}
