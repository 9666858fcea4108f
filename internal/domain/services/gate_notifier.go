package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// TopicGateCredentials is the topic gate devices subscribe to for credential events
const TopicGateCredentials = "gss/gate/credentials"

// Gate event names
const (
	GateEventCredentialAdded   = "credential_added"
	GateEventCredentialRemoved = "credential_removed"
)

// GateEvent is the JSON message published for gate devices
type GateEvent struct {
	Event            string `json:"event"`
	VisitorID        string `json:"visitor_id"`
	CredentialNumber uint32 `json:"credential_number"`
	AccessDate       string `json:"access_date,omitempty"`
	Timestamp        int64  `json:"timestamp"`
}

// InterfaceGateNotifier defines the optional gate-event publisher interface
type InterfaceGateNotifier interface {
	Connect() error
	PublishCredentialEvent(event string, visitor *models.Visitor) error
	Disconnect()
}

// GateNotifier publishes credential lifecycle events over MQTT. It is
// strictly best-effort: publish failures are logged and never block or fail
// the credential operation that produced them.
type GateNotifier struct {
	Config *config.Config
	Client mqtt.Client
}

// NewGateNotifier creates a new MQTT gate notifier
func NewGateNotifier(cfg *config.Config) InterfaceGateNotifier {
	n := &GateNotifier{Config: cfg}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// Unique client ID so multiple server instances do not clash
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetCleanSession(true)

	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warning("[MQTT] connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("[MQTT] connected to %s", cfg.MQTTBrokerURL)
	})

	n.Client = mqtt.NewClient(opts)
	return n
}

// Connect connects to the MQTT broker
func (n *GateNotifier) Connect() error {
	token := n.Client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("[MQTT] connect timed out")
	}
	return token.Error()
}

// PublishCredentialEvent publishes a credential lifecycle event, QoS 1
func (n *GateNotifier) PublishCredentialEvent(event string, visitor *models.Visitor) error {
	msg := GateEvent{
		Event:            event,
		VisitorID:        visitor.ID,
		CredentialNumber: visitor.CredentialNumber,
		AccessDate:       visitor.AccessDate,
		Timestamp:        time.Now().Unix(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	token := n.Client.Publish(TopicGateCredentials, 1, false, payload)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("[MQTT] publish timed out")
	}
	return token.Error()
}

// Disconnect disconnects from the MQTT broker
func (n *GateNotifier) Disconnect() {
	if n.Client != nil && n.Client.IsConnected() {
		n.Client.Disconnect(250)
	}
}

// notifyGate publishes through an optional notifier, logging failures only
func notifyGate(notifier InterfaceGateNotifier, event string, visitor *models.Visitor) {
	if notifier == nil {
		return
	}
	if err := notifier.PublishCredentialEvent(event, visitor); err != nil {
		logger.Warning("gate notification %s for visitor %s failed: %v", event, visitor.ID, err)
	}
}
