package game

// Action names used for metrics and logging
const (
	ActionCreatePlayer    = "create_player"
	ActionCultivate       = "cultivate"
	ActionPlant           = "plant"
	ActionWater           = "water"
	ActionFertilize       = "fertilize"
	ActionCheckGrowth     = "check_growth"
	ActionHarvest         = "harvest"
	ActionRefreshMerchant = "refresh_merchant"
	ActionTrade           = "trade"
	ActionExplore         = "explore"
)

// Exploration reward policy: a find is 1 + roll(3) seeds, so always in [1,3]
const (
	exploreMinFind  = 1
	exploreFindSpan = 3
)

// exploreFinds is the fixed candidate pool exploration draws from
var exploreFinds = []string{"carrot", "tomato", "potato", "wheat", "pumpkin"}
