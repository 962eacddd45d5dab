package world

// Objective key builders. These keys link action effects to quest progress:
// a quest whose Objectives map contains the key advances when the matching
// world event occurs.

func TravelObjective(area string) string { return "travel:" + area }

func DefeatObjective(entityID string) string { return "defeat:" + entityID }

func DefeatTagObjective(tag string) string { return "defeat_tag:" + tag }

func GatherObjective(resource string) string { return "gather:" + resource }

func CraftObjective(item string) string { return "craft:" + item }
