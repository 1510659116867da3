package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyWorkerID contextKey = "worker_id"
	ContextKeyAdminID  contextKey = "admin_id"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	ClockFormat    = "15:04"
)

// Sync cadence defaults, applied when the corresponding config value is zero.
const (
	DefaultSyncIntervalSeconds          = 10
	DefaultSyncBatchSize                = 50
	DefaultSyncBatchDelayMS             = 5000
	DefaultSyncUpdateDelayMS            = 500
	DefaultReconcileIntervalSeconds     = 300
	DefaultSettingsTTLHours             = 8
	DefaultNetworkOfflineThreshold      = 3
	DefaultNetworkProbeTimeoutMS        = 2500
	DefaultNetworkFastTickSeconds       = 5
	DefaultNetworkSyncTickSeconds       = 30
	DefaultRemoteCallTimeoutSeconds     = 10
	DefaultRemoteTokenExpireMin         = 15
	DefaultSQLiteBusyTimeoutMS          = 5000
	DefaultUpdateQueueSize              = 16
	DefaultShutdownGracePeriodSeconds   = 3
	DefaultShutdownCleanupPeriodSeconds = 10
)

const (
	DefaultProbeURL         = "https://clients3.google.com/generate_204"
	DefaultFallbackProbeURL = "https://connectivitycheck.gstatic.com/generate_204"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelRemoteScopeName     = "remote"
	OtelNetmonScopeName     = "netmon"
	OtelSyncScopeName       = "sync"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderAPIKey        = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
