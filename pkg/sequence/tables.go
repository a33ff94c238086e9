package sequence

import "github.com/df07/go-hemisphere-sampler/pkg/core"

// BlueNoiseTable64 is a 64-point best-candidate blue noise set snapped to a 1024x1024 grid.
// It covers a 7-step grid, (7+1)² points.
var BlueNoiseTable64 = []core.Vec2{
	{X: 0.281250, Y: 0.893555},
	{X: 0.125000, Y: 0.616211},
	{X: 0.726562, Y: 0.806641},
	{X: 0.378906, Y: 0.380859},
	{X: 0.367188, Y: 0.957031},
	{X: 0.572266, Y: 0.280273},
	{X: 0.772461, Y: 0.512695},
	{X: 0.080078, Y: 0.168945},
	{X: 0.105469, Y: 0.861328},
	{X: 0.375977, Y: 0.178711},
	{X: 0.668945, Y: 0.005859},
	{X: 0.587891, Y: 0.540039},
	{X: 0.397461, Y: 0.661133},
	{X: 0.756836, Y: 0.230469},
	{X: 0.533203, Y: 0.814453},
	{X: 0.949219, Y: 0.063477},
	{X: 0.078125, Y: 0.399414},
	{X: 0.244141, Y: 0.454102},
	{X: 0.848633, Y: 0.140625},
	{X: 0.895508, Y: 0.789062},
	{X: 0.228516, Y: 0.147461},
	{X: 0.963867, Y: 0.529297},
	{X: 0.115234, Y: 0.025391},
	{X: 0.238281, Y: 0.778320},
	{X: 0.739258, Y: 0.673828},
	{X: 0.808594, Y: 0.928711},
	{X: 0.748047, Y: 0.377930},
	{X: 0.977539, Y: 0.923828},
	{X: 0.368164, Y: 0.805664},
	{X: 0.501953, Y: 0.122070},
	{X: 0.548828, Y: 0.964844},
	{X: 0.597656, Y: 0.666016},
	{X: 0.473633, Y: 0.458984},
	{X: 0.130859, Y: 0.734375},
	{X: 0.179688, Y: 0.312500},
	{X: 0.366211, Y: 0.500977},
	{X: 0.945312, Y: 0.653320},
	{X: 0.229492, Y: 0.945312},
	{X: 0.248047, Y: 0.626953},
	{X: 0.979492, Y: 0.253906},
	{X: 0.329102, Y: 0.072266},
	{X: 0.637695, Y: 0.124023},
	{X: 0.474609, Y: 0.735352},
	{X: 0.623047, Y: 0.404297},
	{X: 0.464844, Y: 0.302734},
	{X: 0.287109, Y: 0.240234},
	{X: 0.835938, Y: 0.635742},
	{X: 0.006836, Y: 0.731445},
	{X: 0.085938, Y: 0.518555},
	{X: 0.766602, Y: 0.057617},
	{X: 0.973633, Y: 0.833984},
	{X: 0.481445, Y: 0.889648},
	{X: 0.468750, Y: 0.028320},
	{X: 0.025391, Y: 0.006836},
	{X: 0.300781, Y: 0.884766},
	{X: 0.083984, Y: 0.275391},
	{X: 0.488281, Y: 0.611328},
	{X: 0.198242, Y: 0.555664},
	{X: 0.567383, Y: 0.188477},
	{X: 0.670898, Y: 0.566406},
	{X: 0.955078, Y: 0.424805},
	{X: 0.876953, Y: 0.234375},
	{X: 0.228516, Y: 0.041992},
	{X: 0.735352, Y: 0.141602},
}

// GoldenRatioTable64 is the first 64 points of the R2 sequence (seed 0.5) snapped to a 1024x1024 grid.
var GoldenRatioTable64 = []core.Vec2{
	{X: 0.253906, Y: 0.069336},
	{X: 0.008789, Y: 0.639648},
	{X: 0.763672, Y: 0.208984},
	{X: 0.518555, Y: 0.779297},
	{X: 0.273438, Y: 0.348633},
	{X: 0.028320, Y: 0.918945},
	{X: 0.783203, Y: 0.488281},
	{X: 0.538086, Y: 0.058594},
	{X: 0.292969, Y: 0.627930},
	{X: 0.047852, Y: 0.198242},
	{X: 0.802734, Y: 0.767578},
	{X: 0.557617, Y: 0.337891},
	{X: 0.312500, Y: 0.907227},
	{X: 0.067383, Y: 0.477539},
	{X: 0.822266, Y: 0.046875},
	{X: 0.577148, Y: 0.617188},
	{X: 0.332031, Y: 0.186523},
	{X: 0.086914, Y: 0.756836},
	{X: 0.841797, Y: 0.326172},
	{X: 0.596680, Y: 0.896484},
	{X: 0.351562, Y: 0.465820},
	{X: 0.106445, Y: 0.036133},
	{X: 0.861328, Y: 0.605469},
	{X: 0.616211, Y: 0.175781},
	{X: 0.371094, Y: 0.745117},
	{X: 0.125977, Y: 0.315430},
	{X: 0.880859, Y: 0.884766},
	{X: 0.635742, Y: 0.455078},
	{X: 0.390625, Y: 0.024414},
	{X: 0.145508, Y: 0.594727},
	{X: 0.900391, Y: 0.165039},
	{X: 0.655273, Y: 0.734375},
	{X: 0.410156, Y: 0.304688},
	{X: 0.165039, Y: 0.874023},
	{X: 0.919922, Y: 0.444336},
	{X: 0.674805, Y: 0.013672},
	{X: 0.429688, Y: 0.583984},
	{X: 0.184570, Y: 0.153320},
	{X: 0.939453, Y: 0.723633},
	{X: 0.694336, Y: 0.292969},
	{X: 0.449219, Y: 0.863281},
	{X: 0.204102, Y: 0.432617},
	{X: 0.958984, Y: 0.002930},
	{X: 0.713867, Y: 0.572266},
	{X: 0.468750, Y: 0.142578},
	{X: 0.223633, Y: 0.711914},
	{X: 0.978516, Y: 0.282227},
	{X: 0.733398, Y: 0.851562},
	{X: 0.488281, Y: 0.421875},
	{X: 0.243164, Y: 0.991211},
	{X: 0.998047, Y: 0.561523},
	{X: 0.752930, Y: 0.130859},
	{X: 0.507812, Y: 0.701172},
	{X: 0.262695, Y: 0.270508},
	{X: 0.017578, Y: 0.840820},
	{X: 0.772461, Y: 0.410156},
	{X: 0.527344, Y: 0.980469},
	{X: 0.282227, Y: 0.549805},
	{X: 0.037109, Y: 0.120117},
	{X: 0.791992, Y: 0.689453},
	{X: 0.546875, Y: 0.259766},
	{X: 0.301758, Y: 0.830078},
	{X: 0.056641, Y: 0.399414},
	{X: 0.811523, Y: 0.969727},
}
