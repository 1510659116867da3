package netmon

//go:generate go run go.uber.org/mock/mockgen -source=./netmon.go -destination=./mocks/netmon_mock.go -package=mocks

import (
	"context"
	"net"
	"net/http"
	"siesta/config"
	"siesta/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Classification int

const (
	Good Classification = iota
	Unstable
	Offline
)

func (c Classification) String() string {
	switch c {
	case Good:
		return "good"
	case Unstable:
		return "unstable"
	case Offline:
		return "offline"
	default:
		return "unknown"
	}
}

// Monitor classifies connectivity with hysteresis: one failed probe must not
// flip the sync gate to offline, sustained failure must. Unstable still counts
// as reachable since real connectivity often exists under it.
type Monitor interface {
	Classification() Classification
	Reachable() bool
	Check(ctx context.Context) Classification
	Subscribe(fn func())
	Start(ctx context.Context)
	Stop()
}

// Prober performs a single bounded reachability probe.
type Prober interface {
	Probe(ctx context.Context) error
}

// AdapterChecker reports whether any local network adapter is usable.
type AdapterChecker func() bool

type monitorImpl struct {
	prober    Prober
	adapterUp AdapterChecker
	threshold int
	fastTick  time.Duration
	syncTick  time.Duration

	mu             sync.Mutex
	failures       int
	classification Classification
	subscribers    []func()

	stopOnce sync.Once
	stop     chan struct{}
}

func New(cfg *config.Config) Monitor {
	threshold := cfg.Network.OfflineThreshold
	if threshold == 0 {
		threshold = constant.DefaultNetworkOfflineThreshold
	}

	fastTick := cfg.Network.FastTickSeconds
	if fastTick == 0 {
		fastTick = constant.DefaultNetworkFastTickSeconds
	}

	syncTick := cfg.Network.SyncTickSeconds
	if syncTick == 0 {
		syncTick = constant.DefaultNetworkSyncTickSeconds
	}

	return &monitorImpl{
		prober:    newHTTPProber(cfg),
		adapterUp: adapterUp,
		threshold: threshold,
		fastTick:  time.Duration(fastTick) * time.Second,
		syncTick:  time.Duration(syncTick) * time.Second,
		// Until the first probe answers, assume the worst so a boot-time
		// drain does not race a dead link.
		failures:       threshold,
		classification: Offline,
		stop:           make(chan struct{}),
	}
}

// NewWithProber builds a monitor with the given probe and adapter check.
func NewWithProber(cfg *config.Config, prober Prober, adapter AdapterChecker) Monitor {
	monitor, _ := New(cfg).(*monitorImpl)
	monitor.prober = prober
	monitor.adapterUp = adapter

	return monitor
}

func (m *monitorImpl) Classification() Classification {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.classification
}

func (m *monitorImpl) Reachable() bool {
	return m.Classification() != Offline
}

// Check runs one classification tick and fires subscribers when connectivity
// returns after an offline stretch.
func (m *monitorImpl) Check(ctx context.Context) Classification {
	var failed bool

	if !m.adapterUp() {
		m.mu.Lock()
		m.failures = m.threshold
		m.classification = Offline
		m.mu.Unlock()

		return Offline
	}

	if err := m.prober.Probe(ctx); err != nil {
		log.Debug().Err(err).Msg("connectivity probe failed")

		failed = true
	}

	m.mu.Lock()

	wasReachable := m.classification != Offline

	if failed {
		m.failures++

		if m.failures >= m.threshold {
			m.classification = Offline
		} else {
			m.classification = Unstable
		}
	} else {
		m.failures = 0
		m.classification = Good
	}

	nowReachable := m.classification != Offline
	classification := m.classification

	var notify []func()
	if !wasReachable && nowReachable {
		notify = append(notify, m.subscribers...)
	}

	m.mu.Unlock()

	if len(notify) > 0 {
		log.Info().Str("classification", classification.String()).Msg("connectivity restored")

		for _, fn := range notify {
			fn()
		}
	}

	return classification
}

// Subscribe registers a callback fired on the not-reachable to reachable edge.
func (m *monitorImpl) Subscribe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subscribers = append(m.subscribers, fn)
}

// Start runs the periodic classification loop. Two periods drive the same
// logic: a fast one keeping the classification fresh for callers, and a
// slower one aligned with the sync gate.
func (m *monitorImpl) Start(ctx context.Context) {
	go func() {
		fast := time.NewTicker(m.fastTick)
		slow := time.NewTicker(m.syncTick)

		defer fast.Stop()
		defer slow.Stop()

		m.Check(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-fast.C:
				m.Check(ctx)
			case <-slow.C:
				m.Check(ctx)
			}
		}
	}()
}

func (m *monitorImpl) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// adapterUp reports whether any non-loopback interface is up with an address.
func adapterUp() bool {
	interfaces, err := net.Interfaces()
	if err != nil {
		return false
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}

	return false
}

type httpProber struct {
	client      *http.Client
	primaryURL  string
	fallbackURL string
}

func newHTTPProber(cfg *config.Config) Prober {
	timeout := cfg.Network.ProbeTimeoutMS
	if timeout == 0 {
		timeout = constant.DefaultNetworkProbeTimeoutMS
	}

	primary := cfg.Network.ProbeURL
	if primary == "" {
		primary = constant.DefaultProbeURL
	}

	fallback := cfg.Network.FallbackProbeURL
	if fallback == "" {
		fallback = constant.DefaultFallbackProbeURL
	}

	return &httpProber{
		client:      &http.Client{Timeout: time.Duration(timeout) * time.Millisecond},
		primaryURL:  primary,
		fallbackURL: fallback,
	}
}

// Probe tries the primary address, then the fallback. Any completed HTTP
// exchange counts: a captive portal answering 511 still proves the link.
func (p *httpProber) Probe(ctx context.Context) error {
	if err := p.head(ctx, p.primaryURL); err != nil {
		return p.head(ctx, p.fallbackURL)
	}

	return nil
}

func (p *httpProber) head(ctx context.Context, probeURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return err //nolint:wrapcheck
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	resp.Body.Close()

	return nil
}
