package gd

// officialTracks maps built-in track IDs to their bundled audio. IDs follow
// the game's level ordering; the audio files ship inside the game resources.
var officialTracks = map[int]SongInfo{
	1:  {Name: "Stereo Madness", Artist: "ForeverBound", IsRobtop: true, AudioFilename: "StereoMadness.mp3"},
	2:  {Name: "Back On Track", Artist: "DJVI", IsRobtop: true, AudioFilename: "BackOnTrack.mp3"},
	3:  {Name: "Polargeist", Artist: "Step", IsRobtop: true, AudioFilename: "Polargeist.mp3"},
	4:  {Name: "Dry Out", Artist: "DJVI", IsRobtop: true, AudioFilename: "DryOut.mp3"},
	5:  {Name: "Base After Base", Artist: "DJVI", IsRobtop: true, AudioFilename: "BaseAfterBase.mp3"},
	6:  {Name: "Can't Let Go", Artist: "DJVI", IsRobtop: true, AudioFilename: "CantLetGo.mp3"},
	7:  {Name: "Jumper", Artist: "Waterflame", IsRobtop: true, AudioFilename: "Jumper.mp3"},
	8:  {Name: "Time Machine", Artist: "Waterflame", IsRobtop: true, AudioFilename: "TimeMachine.mp3"},
	9:  {Name: "Cycles", Artist: "DJVI", IsRobtop: true, AudioFilename: "Cycles.mp3"},
	10: {Name: "xStep", Artist: "DJVI", IsRobtop: true, AudioFilename: "xStep.mp3"},
	11: {Name: "Clutterfunk", Artist: "Waterflame", IsRobtop: true, AudioFilename: "Clutterfunk.mp3"},
	12: {Name: "Theory of Everything", Artist: "DJ-Nate", IsRobtop: true, AudioFilename: "TheoryOfEverything.mp3"},
	13: {Name: "Electroman Adventures", Artist: "Waterflame", IsRobtop: true, AudioFilename: "ElectromanAdventures.mp3"},
	14: {Name: "Clubstep", Artist: "DJ-Nate", IsRobtop: true, AudioFilename: "Clubstep.mp3"},
	15: {Name: "Electrodynamix", Artist: "DJ-Nate", IsRobtop: true, AudioFilename: "Electrodynamix.mp3"},
	16: {Name: "Hexagon Force", Artist: "MDK", IsRobtop: true, AudioFilename: "HexagonForce.mp3"},
	17: {Name: "Blast Processing", Artist: "Waterflame", IsRobtop: true, AudioFilename: "BlastProcessing.mp3"},
	18: {Name: "Theory of Everything 2", Artist: "DJ-Nate", IsRobtop: true, AudioFilename: "TheoryOfEverything2.mp3"},
	19: {Name: "Geometrical Dominator", Artist: "Waterflame", IsRobtop: true, AudioFilename: "GeometricalDominator.mp3"},
	20: {Name: "Deadlocked", Artist: "F-777", IsRobtop: true, AudioFilename: "Deadlocked.mp3"},
	21: {Name: "Fingerdash", Artist: "MDK", IsRobtop: true, AudioFilename: "Fingerdash.mp3"},
	22: {Name: "Dash", Artist: "MDK", IsRobtop: true, AudioFilename: "Dash.mp3"},
}

// StaticResolver serves the built-in track table.
type StaticResolver struct{}

func (StaticResolver) SongInfoForID(id int) (SongInfo, bool) {
	info, ok := officialTracks[id]
	return info, ok
}
