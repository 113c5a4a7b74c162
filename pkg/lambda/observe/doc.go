// Package observe provides adapt.Observer implementations backed by zap and
// prometheus.
package observe
