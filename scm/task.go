/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)
Copyright (C) 2026  tailform authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "github.com/google/uuid"

// TaskState mirrors the lifecycle a fiber goes through in
// original_source/src/fiber/types.rs's FiberState: Ready, Running,
// Suspended, Completed. This package does not yet schedule anything — see
// evalAsync in specialforms.go — but the embedding contract (SPEC_FULL
// §C.1) wants the shape of a future TaskHandle fixed now so builtins and
// the CLI can be written against it.
type TaskState uint8

const (
	TaskReady TaskState = iota
	TaskRunning
	TaskSuspended
	TaskCompleted
)

func (s TaskState) String() string {
	switch s {
	case TaskReady:
		return "ready"
	case TaskRunning:
		return "running"
	case TaskSuspended:
		return "suspended"
	case TaskCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TaskHandle identifies one asynchronous evaluation spawned by `async`
// (§5; not yet implemented — see evalAsync). Where the Rust original keys
// fibers by a process-local incrementing FiberId, this uses a random UUID
// (google/uuid) so handles stay valid identifiers across process restarts
// and an eventual distributed scheduler.
type TaskHandle struct {
	ID     uuid.UUID
	State  TaskState
	Result Value
	Err    error
}

// NewTaskHandle allocates a fresh, Ready-state handle.
func NewTaskHandle() *TaskHandle {
	return &TaskHandle{ID: uuid.New(), State: TaskReady}
}

// Done reports whether the task has finished, successfully or not.
func (h *TaskHandle) Done() bool { return h.State == TaskCompleted }

// complete transitions the handle to Completed with a result or error,
// mutually exclusive. Unexported: only the (future) scheduler drives state
// transitions; callers only ever observe a handle, they never write it.
func (h *TaskHandle) complete(v Value, err error) {
	h.State = TaskCompleted
	h.Result = v
	h.Err = err
}
