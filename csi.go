package csi

import (
	"github.com/sirupsen/logrus"

	"github.com/viktor-platform/etabs-sap-wrapper/analysis"
	"github.com/viktor-platform/etabs-sap-wrapper/connection"
	"github.com/viktor-platform/etabs-sap-wrapper/model"
	"github.com/viktor-platform/etabs-sap-wrapper/tables"
)

// Application identifies one of the supported CSI products.
type Application = connection.Application

var (
	// ETABS targets a CSI ETABS installation.
	ETABS = connection.ETABS

	// SAP2000 targets a CSI SAP2000 installation.
	SAP2000 = connection.SAP2000
)

// Units mirrors the vendor's eUnits enumeration.
type Units = model.Units

// DefaultUnits is used when no explicit units are provided.
const DefaultUnits = model.DefaultUnits

// Dispatcher is the full set of vendor automation operations the SDK
// issues. A connection.Handle satisfies it; tests use the modelmock
// package instead.
type Dispatcher interface {
	tables.Dispatcher
	model.Dispatcher
	analysis.Dispatcher
}

// Config provides configuration options for creating a Client.
type Config struct {
	// Dispatcher issues the underlying automation calls. Required.
	Dispatcher Dispatcher

	// Application names the product the dispatcher is attached to.
	Application Application

	// Logger receives debug output from the SDK. Optional; silent when
	// unset.
	Logger *logrus.Logger
}

// Client is the high-level facade over a vendor application session. It
// groups the capability clients and exposes the raw automation handle for
// calls the SDK does not wrap.
type Client struct {
	d   Dispatcher
	app Application
	log *logrus.Logger

	tables   *tables.Client
	model    *model.Client
	analysis *analysis.Client
}

// New creates a Client around an existing dispatcher. Most callers use
// Connect or Start instead; New exists for mocks and raw handles.
func New(config Config) (*Client, error) {
	if config.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}

	log := config.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	tbl, err := tables.New(tables.Config{Dispatcher: config.Dispatcher, Logger: log})
	if err != nil {
		return nil, err
	}
	mdl, err := model.New(model.Config{Dispatcher: config.Dispatcher})
	if err != nil {
		return nil, err
	}
	ana, err := analysis.New(analysis.Config{Dispatcher: config.Dispatcher})
	if err != nil {
		return nil, err
	}

	return &Client{
		d:        config.Dispatcher,
		app:      config.Application,
		log:      log,
		tables:   tbl,
		model:    mdl,
		analysis: ana,
	}, nil
}

// Connect attaches to a running instance of the application and wraps it in
// a Client. A single attempt is made; failure surfaces immediately as a
// *connection.ConnectError.
func Connect(app Application) (*Client, error) {
	h, err := connection.Connect(app)
	if err != nil {
		return nil, err
	}
	return New(Config{Dispatcher: h, Application: app})
}

// Start launches a new instance of the application and wraps it in a Client.
func Start(app Application) (*Client, error) {
	h, err := connection.Start(app)
	if err != nil {
		return nil, err
	}
	return New(Config{Dispatcher: h, Application: app})
}

// Tables gives access to result-table retrieval.
func (c *Client) Tables() *tables.Client { return c.tables }

// Model gives access to model-file operations.
func (c *Client) Model() *model.Client { return c.model }

// Analysis gives access to the analysis engine.
func (c *Client) Analysis() *analysis.Client { return c.analysis }

// Application reports which vendor product the client is attached to.
func (c *Client) Application() Application { return c.app }

// Raw exposes the underlying automation handle (an *ole.IDispatch for real
// connections) for direct vendor calls. Nil when the dispatcher does not
// carry one.
func (c *Client) Raw() any {
	if r, ok := c.d.(interface{ Raw() any }); ok {
		return r.Raw()
	}
	return nil
}

// Close asks the vendor application to exit without saving and drops the
// session. Dispatchers without a process to exit make this a no-op.
func (c *Client) Close() error {
	if e, ok := c.d.(interface{ Exit() error }); ok {
		if err := e.Exit(); err != nil {
			return err
		}
	}
	c.Release()
	return nil
}

// Release drops the session's automation references while leaving the
// vendor application running.
func (c *Client) Release() {
	if r, ok := c.d.(interface{ Release() }); ok {
		r.Release()
	}
}
