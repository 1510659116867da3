package di

import (
	syncService "siesta/internal/domains/sync/service"
)

func providePusher(sync syncService.Sync) syncService.Pusher {
	return sync
}
