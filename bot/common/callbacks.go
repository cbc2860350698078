package common

// Callback data tags routed by the bot. These values appear inside inline
// keyboards and must stay stable across deployments, or buttons on old
// messages stop working.
const (
	CallbackColorPrediction  = "color_prediction"
	CallbackNumberPrediction = "number_prediction"
	CallbackVerifyMembership = "verify_membership"
)
