package parameter

// Capability scoring. Each observed capability contributes points; the
// summed score maps through the grade thresholds below
const (
	// ScoreTrueColor rewards a 24-bit color terminal
	ScoreTrueColor = 30

	// ScorePerExtension rewards each detected capability extension,
	// capped at ScoreExtensionCap
	ScorePerExtension = 5
	ScoreExtensionCap = 15

	// ScoreLargeSurface rewards a cell budget of at least
	// DeviceLargeSurfaceCells (width * height)
	ScoreLargeSurface       = 10
	DeviceLargeSurfaceCells = 5000

	// ScoreKnownVendor rewards emulators known to render fast
	ScoreKnownVendor = 15

	// Memory hints: rich hosts get the full bonus, adequate hosts a
	// smaller one, below DeviceMemoryOKMB nothing
	ScoreMemoryRich    = 15
	ScoreMemoryOK      = 8
	DeviceMemoryRichMB = 8192
	DeviceMemoryOKMB   = 2048

	// DeviceRemotePenalty discounts SSH sessions for round-trip latency
	DeviceRemotePenalty = 20

	// DeviceSavedPerfPenalty discounts hosts where a prior run already
	// forced performance mode
	DeviceSavedPerfPenalty = 25
)

// Grade thresholds on the summed score
const (
	DeviceGradeHighThreshold   = 70
	DeviceGradeMediumThreshold = 35

	// DeviceUltraHighScore promotes an already-high grade to the
	// ultra-high geometry tier
	DeviceUltraHighScore = 80
)

// Texture resolution caps per grade (side length of the square RGBA grid)
const (
	TextureResolutionHigh   = 64
	TextureResolutionMedium = 48
	TextureResolutionLow    = 32
)
