package netmon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"siesta/config"
	"siesta/internal/netmon"
	"siesta/internal/netmon/mocks"
)

func monitorConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Network.OfflineThreshold = 3

	return cfg
}

func adapterAlwaysUp() bool { return true }

func TestMonitor_BootsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProber := mocks.NewMockProber(ctrl)

	monitor := netmon.NewWithProber(monitorConfig(), mockProber, adapterAlwaysUp)

	assert.Equal(t, netmon.Offline, monitor.Classification())
	assert.False(t, monitor.Reachable())
}

func TestMonitor_Check(t *testing.T) {
	tests := []struct {
		name      string
		adapter   netmon.AdapterChecker
		setupMock func(mockProber *mocks.MockProber)
		want      []netmon.Classification
	}{
		{
			name:    "success clears boot state",
			adapter: adapterAlwaysUp,
			setupMock: func(mockProber *mocks.MockProber) {
				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(nil)
			},
			want: []netmon.Classification{netmon.Good},
		},
		{
			name:    "failures below threshold stay unstable",
			adapter: adapterAlwaysUp,
			setupMock: func(mockProber *mocks.MockProber) {
				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(nil)

				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(errors.New("probe timeout")).
					Times(2)
			},
			want: []netmon.Classification{netmon.Good, netmon.Unstable, netmon.Unstable},
		},
		{
			name:    "sustained failure flips to offline",
			adapter: adapterAlwaysUp,
			setupMock: func(mockProber *mocks.MockProber) {
				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(nil)

				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(errors.New("probe timeout")).
					Times(3)
			},
			want: []netmon.Classification{netmon.Good, netmon.Unstable, netmon.Unstable, netmon.Offline},
		},
		{
			name:    "success after failures resets the counter",
			adapter: adapterAlwaysUp,
			setupMock: func(mockProber *mocks.MockProber) {
				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(nil)

				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(errors.New("probe timeout")).
					Times(2)

				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(nil)

				mockProber.EXPECT().
					Probe(gomock.Any()).
					Return(errors.New("probe timeout"))
			},
			want: []netmon.Classification{netmon.Good, netmon.Unstable, netmon.Unstable, netmon.Good, netmon.Unstable},
		},
		{
			name:      "adapter down is offline without probing",
			adapter:   func() bool { return false },
			setupMock: func(mockProber *mocks.MockProber) {},
			want:      []netmon.Classification{netmon.Offline},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProber := mocks.NewMockProber(ctrl)
			tt.setupMock(mockProber)

			monitor := netmon.NewWithProber(monitorConfig(), mockProber, tt.adapter)

			for i, want := range tt.want {
				got := monitor.Check(context.Background())
				assert.Equal(t, want, got, "tick %d", i)
				assert.Equal(t, want, monitor.Classification(), "tick %d", i)
			}
		})
	}
}

func TestMonitor_Reachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProber := mocks.NewMockProber(ctrl)
	mockProber.EXPECT().Probe(gomock.Any()).Return(nil)
	mockProber.EXPECT().Probe(gomock.Any()).Return(errors.New("probe timeout"))

	monitor := netmon.NewWithProber(monitorConfig(), mockProber, adapterAlwaysUp)

	monitor.Check(context.Background())
	assert.True(t, monitor.Reachable())

	// One failed probe degrades to unstable, which still counts as reachable.
	monitor.Check(context.Background())
	assert.Equal(t, netmon.Unstable, monitor.Classification())
	assert.True(t, monitor.Reachable())
}

func TestMonitor_SubscriberFiresOnRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProber := mocks.NewMockProber(ctrl)
	mockProber.EXPECT().Probe(gomock.Any()).Return(nil).Times(2)

	monitor := netmon.NewWithProber(monitorConfig(), mockProber, adapterAlwaysUp)

	fired := 0
	monitor.Subscribe(func() { fired++ })

	// Boot state is offline, so the first successful probe is a recovery.
	monitor.Check(context.Background())
	assert.Equal(t, 1, fired)

	// Staying reachable must not fire again.
	monitor.Check(context.Background())
	assert.Equal(t, 1, fired)
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "good", netmon.Good.String())
	assert.Equal(t, "unstable", netmon.Unstable.String())
	assert.Equal(t, "offline", netmon.Offline.String())
	assert.Equal(t, "unknown", netmon.Classification(99).String())
}
