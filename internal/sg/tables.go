package sg

// Expected-strokes reference tables, Team Norway SG profile methodology.
// Each entry is [max distance in meters, expected strokes]; lookups
// interpolate linearly between breakpoints and clamp at the ends.

// expectedPutts covers the green from 0 to 28m, PGA Tour putting statistics.
var expectedPutts = []tableEntry{
	{0.1, 1.0},
	{0.2, 1.0},
	{0.3, 1.0},
	{0.4, 1.01},
	{0.5, 1.02},
	{0.6, 1.03},
	{0.7, 1.04},
	{0.8, 1.06},
	{0.9, 1.08},
	{1.0, 1.1},
	{1.1, 1.12},
	{1.2, 1.14},
	{1.3, 1.16},
	{1.4, 1.18},
	{1.5, 1.2},
	{1.6, 1.24},
	{1.7, 1.28},
	{1.8, 1.32},
	{1.9, 1.36},
	{2.0, 1.4},
	{2.1, 1.42},
	{2.2, 1.44},
	{2.3, 1.46},
	{2.4, 1.48},
	{2.5, 1.5},
	{2.6, 1.52},
	{2.7, 1.54},
	{2.8, 1.56},
	{2.9, 1.58},
	{3.0, 1.6},
	{3.5, 1.66},
	{4.0, 1.72},
	{4.5, 1.78},
	{5.0, 1.82},
	{5.5, 1.86},
	{6.0, 1.9},
	{6.5, 1.93},
	{7.0, 1.96},
	{7.5, 1.98},
	{8.0, 2.0},
	{8.5, 2.02},
	{9.0, 2.04},
	{9.5, 2.055},
	{10.0, 2.07},
	{10.5, 2.085},
	{11.0, 2.1},
	{11.5, 2.115},
	{12.0, 2.13},
	{12.5, 2.145},
	{13.0, 2.16},
	{13.5, 2.17},
	{14.0, 2.18},
	{14.5, 2.188},
	{15.0, 2.196},
	{15.5, 2.204},
	{16.0, 2.212},
	{16.5, 2.22},
	{17.0, 2.228},
	{17.5, 2.236},
	{18.0, 2.244},
	{18.5, 2.252},
	{19.0, 2.26},
	{19.5, 2.268},
	{20.0, 2.276},
	{21.0, 2.292},
	{22.0, 2.308},
	{23.0, 2.324},
	{24.0, 2.34},
	{25.0, 2.356},
	{26.0, 2.372},
	{27.0, 2.388},
	{28.0, 2.406},
}

// expectedStrokesFairway covers approach shots from fairway lies.
var expectedStrokesFairway = []tableEntry{
	{5, 2.06},
	{10, 2.2},
	{15, 2.29},
	{20, 2.38},
	{25, 2.44},
	{30, 2.5},
	{40, 2.58},
	{50, 2.64},
	{60, 2.7},
	{70, 2.75},
	{80, 2.8},
	{90, 2.84},
	{100, 2.88},
	{110, 2.92},
	{120, 2.94},
	{130, 2.97},
	{140, 3.0},
	{150, 3.02},
	{160, 3.06},
	{170, 3.1},
	{180, 3.14},
	{190, 3.2},
	{200, 3.26},
	{220, 3.38},
	{240, 3.52},
	{260, 3.66},
	{280, 3.8},
	{300, 3.94},
	{350, 4.22},
	{400, 4.48},
	{450, 4.72},
	{500, 4.88},
	{550, 4.94},
}

// expectedStrokesRough is the fairway curve shifted for rough lies.
var expectedStrokesRough = []tableEntry{
	{5, 2.22},
	{10, 2.36},
	{15, 2.46},
	{20, 2.54},
	{25, 2.6},
	{30, 2.66},
	{40, 2.74},
	{50, 2.82},
	{60, 2.88},
	{70, 2.94},
	{80, 2.99},
	{90, 3.04},
	{100, 3.08},
	{110, 3.12},
	{120, 3.16},
	{130, 3.2},
	{140, 3.24},
	{150, 3.28},
	{160, 3.34},
	{170, 3.4},
	{180, 3.46},
	{190, 3.54},
	{200, 3.62},
	{220, 3.78},
	{240, 3.94},
	{260, 4.1},
	{280, 4.26},
	{300, 4.42},
	{350, 4.74},
	{400, 5.0},
	{450, 5.06},
	{500, 5.1},
	{550, 5.13},
}

// expectedStrokesBunker covers greenside and fairway bunker shots.
var expectedStrokesBunker = []tableEntry{
	{5, 2.26},
	{10, 2.44},
	{12, 2.46},
	{14, 2.48},
	{16, 2.55},
	{18, 2.53},
	{20, 2.56},
	{22, 2.59},
	{24, 2.62},
	{26, 2.65},
	{28, 2.69},
	{30, 2.72},
	{40, 2.82},
	{50, 2.92},
	{60, 3.02},
	{80, 3.18},
	{100, 3.32},
	{150, 3.58},
	{200, 3.84},
	{300, 4.32},
	{400, 4.78},
	{500, 5.04},
	{550, 5.12},
}

// expectedStrokesRecovery covers trees, deep rough and similar trouble lies.
var expectedStrokesRecovery = []tableEntry{
	{10, 2.54},
	{20, 2.74},
	{30, 2.88},
	{50, 3.08},
	{75, 3.26},
	{100, 3.42},
	{150, 3.72},
	{200, 4.0},
	{250, 4.28},
	{300, 4.54},
	{400, 5.0},
	{500, 5.32},
	{550, 5.46},
}

// expectedStrokesTee covers par 3, 4 and 5 tee shots.
var expectedStrokesTee = []tableEntry{
	{91, 2.92},
	{100, 2.95},
	{110, 2.99},
	{120, 2.98},
	{130, 2.97},
	{140, 2.98},
	{150, 3.0},
	{160, 3.02},
	{170, 3.06},
	{180, 3.1},
	{190, 3.14},
	{200, 3.2},
	{220, 3.3},
	{240, 3.42},
	{260, 3.54},
	{280, 3.66},
	{300, 3.78},
	{320, 3.88},
	{340, 3.96},
	{360, 4.02},
	{380, 4.08},
	{400, 4.14},
	{420, 4.22},
	{440, 4.32},
	{460, 4.44},
	{480, 4.58},
	{500, 4.72},
	{520, 4.82},
	{540, 4.88},
	{560, 4.9},
	{580, 4.91},
	{600, 4.92},
	{610, 4.926},
}

// Short-game tables give more precise expectations for around-the-green
// shots (10-30m), including the putts typically left after the shot.

type shortgameEntry struct {
	dist      float64
	expected  float64
	puttsLeft float64
}

var shortgameFairway = []shortgameEntry{
	{10, 2.202, 1.2},
	{12, 2.246, 1.25},
	{14, 2.29, 1.29},
	{16, 2.34, 1.34},
	{18, 2.4, 1.4},
	{20, 2.42, 1.42},
	{22, 2.44, 1.44},
	{24, 2.46, 1.46},
	{26, 2.485, 1.48},
	{28, 2.51, 1.51},
	{30, 2.53, 1.53},
}

var shortgameBunker = []shortgameEntry{
	{10, 2.44, 1.44},
	{12, 2.46, 1.46},
	{14, 2.48, 1.48},
	{16, 2.55, 1.55},
	{18, 2.53, 1.53},
	{20, 2.559, 1.56},
	{22, 2.588, 1.59},
	{24, 2.617, 1.62},
	{26, 2.646, 1.65},
	{28, 2.69, 1.69},
	{30, 2.719, 1.72},
}
