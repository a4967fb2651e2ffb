package constant

const (
	DIR_RIGHT, ACT_A    = 0x00, 0x00
	DIR_LEFT, ACT_B     = 0x01, 0x01
	DIR_UP, ACT_SELECT  = 0x02, 0x02
	DIR_DOWN, ACT_START = 0x03, 0x03

	// Asset tables
	LABEL_WIDTH = 20
	MENU_COUNT  = 14
	GLYPH_COUNT = 25
	GLYPH_ROWS  = 8
	GLYPH_WIDTH = 8
	NOTE_COUNT  = 89

	// Character LCD
	LCD_ROWS = 4
	LCD_COLS = LABEL_WIDTH

	// Reel LED matrices
	REEL_COUNT    = 3
	REEL_GAP      = 2
	MATRIX_WIDTH  = REEL_COUNT*GLYPH_WIDTH + (REEL_COUNT-1)*REEL_GAP
	MATRIX_HEIGHT = GLYPH_ROWS
	ROW_TICKS     = 240

	// Clock
	CLOCK_FREQ  = 960000
	TARGET_FPS  = 60
	FRAME_TICKS = CLOCK_FREQ / TARGET_FPS

	// Audio
	AUDIO_FREQ       = 48000
	CHANNELS         = 2
	AUDIO_SAMPLES    = AUDIO_FREQ / TARGET_FPS
	AUDIO_QUEUE_SIZE = 4

	// Window
	WINDOW_TITLE = "slotassets"
	WINDOW_SCALE = 16
)
