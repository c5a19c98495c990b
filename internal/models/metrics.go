package models

// Metrics summarizes one user's diet adherence. FoodsWithinDiet is the
// on-diet percentage and is null while the user has no foods logged, since
// JSON has no way to carry the 0/0 result.
type Metrics struct {
	TotalFoods        int      `json:"totalFoods"`
	TotalDietFoods    int      `json:"totalDietFoods"`
	TotalOutDietFoods int      `json:"totalOutDietFoods"`
	FoodsWithinDiet   *float64 `json:"foodsWithinDiet"`
}
