package window

import (
	"sync"

	"github.com/ushitora-anqou/slotassets/constant"
)

// audioQueue hands sample frames from the viewer loop to the audio thread.
// It keeps at most AUDIO_QUEUE_SIZE frames and drops the oldest on overflow.
type audioQueue struct {
	mtx     sync.Mutex
	frames  [][]float32
	dropped int
}

func (q *audioQueue) push(buf []float32) error {
	if err := checkAudioBuffer(buf); err != nil {
		return err
	}
	frame := append([]float32(nil), buf...)

	q.mtx.Lock()
	defer q.mtx.Unlock()
	if len(q.frames) >= constant.AUDIO_QUEUE_SIZE {
		q.frames = q.frames[1:]
		q.dropped++
	}
	q.frames = append(q.frames, frame)
	return nil
}

// pop returns nil when nothing is queued.
func (q *audioQueue) pop() []float32 {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	if len(q.frames) == 0 {
		return nil
	}
	frame := q.frames[0]
	q.frames = q.frames[1:]
	return frame
}

func (q *audioQueue) len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return len(q.frames)
}
