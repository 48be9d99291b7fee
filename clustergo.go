package clustergo

import (
	"context"
	"time"

	"github.com/hupe1980/clustergo/blobstore"
	"github.com/hupe1980/clustergo/cluster"
	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/persistence"
)

// Algorithm partitions a dataset. kmedoids.KMedoids is the built-in
// implementation; custom partitioners plug in here.
type Algorithm interface {
	Process(ctx context.Context, ds *dataset.Dataset) (*cluster.Result, error)
}

// Engine wraps an Algorithm with logging, metrics, resource
// governance, and snapshot persistence.
type Engine struct {
	algorithm Algorithm
	opts      options
}

// New creates an Engine around the given algorithm.
func New(algorithm Algorithm, optFns ...Option) *Engine {
	return &Engine{
		algorithm: algorithm,
		opts:      applyOptions(optFns),
	}
}

// Process runs the algorithm on the dataset. Subpackage errors are
// unified under the root sentinels; the original error remains
// reachable via errors.As.
func (e *Engine) Process(ctx context.Context, ds *dataset.Dataset) (*cluster.Result, error) {
	if e.opts.controller != nil {
		if err := e.opts.controller.AcquireWorker(ctx); err != nil {
			return nil, err
		}
		defer e.opts.controller.ReleaseWorker()
	}

	size := 0
	if ds != nil {
		size = ds.Len()
	}

	start := time.Now()
	result, err := e.algorithm.Process(ctx, ds)
	err = translateError(err)

	iterations := 0
	if result != nil {
		iterations = result.Iterations
	}

	e.opts.logger.LogProcess(ctx, size, iterations, err)
	e.opts.metricsCollector.RecordProcess(size, iterations, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// SaveSnapshot persists a snapshot using the engine's codec,
// compression, and IO limits.
func (e *Engine) SaveSnapshot(ctx context.Context, store blobstore.Store, name string, snap *persistence.Snapshot) error {
	start := time.Now()
	err := persistence.Save(ctx, store, name, snap, func(o *persistence.Options) {
		o.Codec = e.opts.codec
		o.Compression = e.opts.compression
		o.Controller = e.opts.controller
	})

	e.opts.logger.LogSnapshotSave(ctx, name, err)
	e.opts.metricsCollector.RecordSnapshotSave(time.Since(start), err)

	return err
}

// LoadSnapshot restores a snapshot. The codec and compression are
// read from the snapshot header, not from the engine options.
func (e *Engine) LoadSnapshot(ctx context.Context, store blobstore.Store, name string) (*persistence.Snapshot, error) {
	start := time.Now()
	snap, err := persistence.Load(ctx, store, name, func(o *persistence.Options) {
		o.Controller = e.opts.controller
	})

	e.opts.logger.LogSnapshotLoad(ctx, name, err)
	e.opts.metricsCollector.RecordSnapshotLoad(time.Since(start), err)

	return snap, err
}
