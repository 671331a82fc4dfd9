package sakedb

// EntityResult reports the outcome of one entity's pull or push.
type EntityResult struct {
	// Sheet is the remote sheet name of the entity.
	Sheet string

	// Processed is the number of rows read (pull) or local records
	// examined (push).
	Processed int

	// Written is the number of records upserted locally (pull) or rows
	// appended remotely (push).
	Written int

	// Skipped is the number of row-local failures that were logged and
	// skipped without aborting the entity.
	Skipped int

	// Err is set when the whole entity failed before its batch
	// committed. The other counters are then zero.
	Err error
}

// Result aggregates per-entity outcomes of one sync run.
type Result struct {
	Entities []EntityResult
}

// Written sums records written across all entities.
func (r *Result) Written() int {
	var n int
	for _, e := range r.Entities {
		n += e.Written
	}
	return n
}

// Skipped sums skipped rows across all entities.
func (r *Result) Skipped() int {
	var n int
	for _, e := range r.Entities {
		n += e.Skipped
	}
	return n
}

// Failed counts entities that aborted before commit.
func (r *Result) Failed() int {
	var n int
	for _, e := range r.Entities {
		if e.Err != nil {
			n++
		}
	}
	return n
}
