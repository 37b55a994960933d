package workouts

const (
	WorkoutPush      = "push"
	WorkoutPull      = "pull"
	WorkoutLegs      = "legs"
	WorkoutChestBack = "chest-back"
	WorkoutArms      = "arms"
)

func ex(id, name string, sets int, reps string) Exercise {
	return Exercise{ID: id, Name: name, Sets: sets, Reps: reps}
}

var (
	shoulders = ExerciseGroup{Title: "Shoulders", Exercises: []Exercise{
		ex("overhead-press", "Overhead Press", 3, "8-10"),
		ex("lateral-raises", "Lateral Raises", 3, "12-15"),
		ex("front-raises", "Front Raises", 3, "12-15"),
	}}
	triceps = ExerciseGroup{Title: "Triceps", Exercises: []Exercise{
		ex("tricep-pushdowns", "Tricep Pushdowns", 3, "10"),
		ex("skull-crushers", "Skull Crushers", 3, "8-10"),
		ex("overhead-tricep-ext", "Overhead Tricep Ext", 3, "12"),
	}}
	chest = ExerciseGroup{Title: "Chest", Exercises: []Exercise{
		ex("bench-press", "Bench Press", 3, "8-10"),
		ex("incl-dumbbell-press", "Incl. Dumbbell Press", 3, "10"),
		ex("cable-flyes", "Cable Flyes", 3, "12-15"),
	}}
	back = ExerciseGroup{Title: "Back", Exercises: []Exercise{
		ex("pull-ups", "Pull-Ups", 3, "8-10"),
		ex("barbell-rows", "Barbell Rows", 3, "8-10"),
		ex("lat-pulldowns", "Lat Pulldowns", 3, "10-12"),
	}}
	biceps = ExerciseGroup{Title: "Biceps", Exercises: []Exercise{
		ex("barbell-curls", "Barbell Curls", 3, "8-10"),
		ex("hammer-curls", "Hammer Curls", 3, "10-12"),
		ex("preacher-curls", "Preacher Curls", 3, "12"),
	}}
	legs = ExerciseGroup{Title: "Legs", Exercises: []Exercise{
		ex("squats", "Squats", 3, "8-10"),
		ex("romanian-deadlifts", "Romanian Deadlifts", 3, "8-10"),
		ex("leg-press", "Leg Press", 3, "10-12"),
		ex("leg-curls", "Leg Curls", 3, "12-15"),
		ex("calf-raises", "Calf Raises", 3, "15"),
	}}
)

func DefaultWorkouts() []Workout {
	return []Workout{
		{ID: WorkoutPush, Title: "Push Workout", Groups: []ExerciseGroup{shoulders, triceps, chest}},
		{ID: WorkoutPull, Title: "Pull Workout", Groups: []ExerciseGroup{back, biceps}},
		{ID: WorkoutLegs, Title: "Legs Workout", Groups: []ExerciseGroup{legs}},
		{ID: WorkoutChestBack, Title: "Chest & Back Workout", Groups: []ExerciseGroup{chest, back}},
		{ID: WorkoutArms, Title: "Arms Workout", Groups: []ExerciseGroup{biceps, shoulders, triceps}},
	}
}

// DefaultSplits lists the Bro Split and the Arnold Split, in display order.
func DefaultSplits() []Split {
	return []Split{
		{
			ID:   "bro-split",
			Name: "Bro Split",
			Categories: []Category{
				{Title: "Push", Description: "Shoulders, Triceps, Chest", WorkoutID: WorkoutPush},
				{Title: "Pull", Description: "Back, Biceps", WorkoutID: WorkoutPull},
				{Title: "Legs", Description: "Legs", WorkoutID: WorkoutLegs},
			},
		},
		{
			ID:   "arnold-split",
			Name: "Arnold Split",
			Categories: []Category{
				{Title: "Legs", Description: "Legs", WorkoutID: WorkoutLegs},
				{Title: "Chest & Back", Description: "Chest, Back", WorkoutID: WorkoutChestBack},
				{Title: "Arms", Description: "Biceps, Shoulders, Triceps", WorkoutID: WorkoutArms},
			},
		},
	}
}

func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSplits(), DefaultWorkouts())
	if err != nil {
		// the literal catalog above is consistent
		panic(err)
	}
	return c
}
