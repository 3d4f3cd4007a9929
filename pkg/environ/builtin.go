package environ

// Well-known variables of the Gazebo Garden + ArduPilot SITL setup
const (
	VarPath         = "PATH"
	VarPluginPath   = "GZ_SIM_SYSTEM_PLUGIN_PATH"
	VarResourcePath = "GZ_SIM_RESOURCE_PATH"
	VarGazeboVer    = "GZ_VERSION"
)

// GazeboGardenName is the name of the built-in profile
const GazeboGardenName = "gazebo-garden"

// GazeboGarden returns the built-in profile: ArduPilot SITL binaries on
// PATH, the ardupilot_gazebo plugin and the workspace plugins, the model
// and world directories, and the Garden version selector.
func GazeboGarden() Profile {
	return Profile{
		Name:        GazeboGardenName,
		Description: "Gazebo Garden with ArduPilot SITL and the BlueROV2 models",
		Separator:   DefaultSeparator,
		Steps: []Assignment{
			{Variable: VarPath, Mode: ModePrepend, Entries: []string{"$HOME/ardupilot/build/sitl/bin"}},
			{Variable: VarPluginPath, Mode: ModePrepend, Entries: []string{"$HOME/ardupilot_gazebo/build"}},
			{Variable: VarPluginPath, Mode: ModePrepend, Entries: []string{"$HOME/ws_angler/install/lib"}},
			{Variable: VarResourcePath, Mode: ModePrepend, Entries: []string{
				"$HOME/ardupilot_gazebo/models",
				"$HOME/ardupilot_gazebo/worlds",
			}},
			{Variable: VarResourcePath, Mode: ModePrepend, Entries: []string{"$HOME/bluerov2_gz/models"}},
			{Variable: VarResourcePath, Mode: ModePrepend, Entries: []string{"$HOME/bluerov2_gz/worlds"}},
			{Variable: VarGazeboVer, Mode: ModeSet, Entries: []string{"garden"}},
		},
	}
}
