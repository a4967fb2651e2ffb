//go:build sdl2

package window

// typedef float Float32;
// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"reflect"
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/ushitora-anqou/slotassets/constant"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Keycode]WindowEvent{
	sdl.K_d:     {Direction: 1 << constant.DIR_RIGHT},
	sdl.K_RIGHT: {Direction: 1 << constant.DIR_RIGHT},
	sdl.K_a:     {Direction: 1 << constant.DIR_LEFT},
	sdl.K_LEFT:  {Direction: 1 << constant.DIR_LEFT},
	sdl.K_w:     {Direction: 1 << constant.DIR_UP},
	sdl.K_UP:    {Direction: 1 << constant.DIR_UP},
	sdl.K_s:     {Direction: 1 << constant.DIR_DOWN},
	sdl.K_DOWN:  {Direction: 1 << constant.DIR_DOWN},
	sdl.K_k:     {Action: 1 << constant.ACT_A},
	sdl.K_j:     {Action: 1 << constant.ACT_B},
}

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
}

// SDLWindow draws every LED as a lit or dark square on a black board and
// plays the tone through an SDL audio callback.
type SDLWindow struct {
	window      *sdl.Window
	renderer    *sdl.Renderer
	scale       int32
	screen      screen
	held        WindowEvent
	audio       audioQueue
	audioDevice sdl.AudioDeviceID
	userData    unsafe.Pointer
}

func NewSDLWindow(scale int) (*SDLWindow, error) {
	window, renderer, err := sdl.CreateWindowAndRenderer(
		int32(constant.MATRIX_WIDTH*scale),
		int32(constant.MATRIX_HEIGHT*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}
	window.SetTitle(constant.WINDOW_TITLE)

	wind := &SDLWindow{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
	}
	wind.userData = pointer.Save(wind)

	audioDevice, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     constant.AUDIO_FREQ,
		Format:   sdl.AUDIO_F32,
		Channels: constant.CHANNELS,
		Samples:  constant.AUDIO_SAMPLES,
		Callback: sdl.AudioCallback(C.OnAudioPlayback),
		UserData: wind.userData,
	}, nil, 0)
	if err != nil {
		pointer.Unref(wind.userData)
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}
	sdl.PauseAudioDevice(audioDevice, false)
	wind.audioDevice = audioDevice

	return wind, nil
}

func (wind *SDLWindow) Destroy() {
	sdl.CloseAudioDevice(wind.audioDevice)
	pointer.Unref(wind.userData)
	wind.renderer.Destroy()
	wind.window.Destroy()
}

func (wind *SDLWindow) DrawLine(ly int, scanline []uint8) error {
	return wind.screen.drawLine(ly, scanline)
}

func (wind *SDLWindow) ShowText(lines []string, cursor int) error {
	wind.window.SetTitle(title(lines, cursor))
	return nil
}

// HandleEvents polls SDL and returns the buttons held after this frame's
// key events. It reports true when the window is closed or Escape is hit.
func (wind *SDLWindow) HandleEvents() (bool, *WindowEvent) {
	escape := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			escape = true
		case *sdl.KeyboardEvent:
			if event.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
			}
			if key, found := sdlKeys[event.Keysym.Sym]; found {
				wind.held.press(key, event.Type == sdl.KEYDOWN)
			}
		}
	}
	we := wind.held
	return escape, &we
}

func (wind *SDLWindow) UpdateScreen() error {
	if err := wind.renderer.SetDrawColor(0, 0, 0, 0xff); err != nil {
		return err
	}
	if err := wind.renderer.Clear(); err != nil {
		return err
	}

	// One pixel of margin around each LED
	size := wind.scale - 2
	if size < 1 {
		size = wind.scale
	}
	for row := 0; row < constant.MATRIX_HEIGHT; row++ {
		for col := 0; col < constant.MATRIX_WIDTH; col++ {
			c := wind.screen.color(row, col)
			wind.renderer.SetDrawColor(c[0], c[1], c[2], 0xff)
			wind.renderer.FillRect(&sdl.Rect{
				X: int32(col)*wind.scale + (wind.scale-size)/2,
				Y: int32(row)*wind.scale + (wind.scale-size)/2,
				W: size,
				H: size,
			})
		}
	}
	wind.renderer.Present()
	return nil
}

func (wind *SDLWindow) EnqueueAudioBuffer(buf []float32) error {
	return wind.audio.push(buf)
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 4
	hdr := reflect.SliceHeader{Data: uintptr(unsafe.Pointer(stream)), Len: n, Cap: n}
	out := *(*[]C.Float32)(unsafe.Pointer(&hdr))

	wind := pointer.Restore(userdata).(*SDLWindow)
	frame := wind.audio.pop()
	for i := range out {
		if i < len(frame) {
			out[i] = C.Float32(frame[i])
		} else {
			out[i] = 0
		}
	}
}
