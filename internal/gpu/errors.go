package gpu

import "errors"

var (
	// ErrNilHALDevice is returned when a Device is created without a HAL
	// device or queue.
	ErrNilHALDevice = errors.New("gpu: nil HAL device or queue")

	// ErrNoTarget is returned by Frame before Resize or SetTargetView
	// provided a color target.
	ErrNoTarget = errors.New("gpu: no render target")

	// ErrNotHALProvider is returned when a device provider does not expose
	// HAL handles.
	ErrNotHALProvider = errors.New("gpu: provider does not expose HAL device")

	// ErrFrameTimeout is returned by Frame when the GPU does not finish a
	// frame within the fence timeout.
	ErrFrameTimeout = errors.New("gpu: frame timed out")
)
