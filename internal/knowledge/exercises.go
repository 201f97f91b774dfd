package knowledge

// Exercises is the static exercise knowledge table.
var Exercises = []ExerciseItem{
	// Push
	{Name: "Push-up", Movement: MovementPush, MuscleGroup: "chest", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Dumbbell Bench Press", Movement: MovementPush, MuscleGroup: "chest", Difficulty: "intermediate", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Barbell Bench Press", Movement: MovementPush, MuscleGroup: "chest", Difficulty: "intermediate", Equipment: "barbell", Impact: ImpactLow},
	{Name: "Pike Push-up", Movement: MovementPush, MuscleGroup: "shoulders", Difficulty: "intermediate", Equipment: "none", Impact: ImpactLow},
	{Name: "Dumbbell Shoulder Press", Movement: MovementPush, MuscleGroup: "shoulders", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Lateral Raise", Movement: MovementPush, MuscleGroup: "shoulders", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Bench Dips", Movement: MovementPush, MuscleGroup: "triceps", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Overhead Triceps Extension", Movement: MovementPush, MuscleGroup: "triceps", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},

	// Pull
	{Name: "Pull-up", Movement: MovementPull, MuscleGroup: "back", Difficulty: "advanced", Equipment: "none", Impact: ImpactModerate},
	{Name: "Inverted Row", Movement: MovementPull, MuscleGroup: "back", Difficulty: "intermediate", Equipment: "none", Impact: ImpactLow},
	{Name: "One-arm Dumbbell Row", Movement: MovementPull, MuscleGroup: "back", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Band Pull-apart", Movement: MovementPull, MuscleGroup: "back", Difficulty: "beginner", Equipment: "band", Impact: ImpactLow},
	{Name: "Dumbbell Curl", Movement: MovementPull, MuscleGroup: "biceps", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Band Curl", Movement: MovementPull, MuscleGroup: "biceps", Difficulty: "beginner", Equipment: "band", Impact: ImpactLow},
	{Name: "Superman Hold", Movement: MovementPull, MuscleGroup: "core", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Plank", Movement: MovementPull, MuscleGroup: "core", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},

	// Legs
	{Name: "Bodyweight Squat", Movement: MovementLegs, MuscleGroup: "quads", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Goblet Squat", Movement: MovementLegs, MuscleGroup: "quads", Difficulty: "intermediate", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Jump Squat", Movement: MovementLegs, MuscleGroup: "quads", Difficulty: "intermediate", Equipment: "none", Impact: ImpactHigh},
	{Name: "Romanian Deadlift", Movement: MovementLegs, MuscleGroup: "hamstrings", Difficulty: "intermediate", Equipment: "barbell", Impact: ImpactLow},
	{Name: "Dumbbell Romanian Deadlift", Movement: MovementLegs, MuscleGroup: "hamstrings", Difficulty: "beginner", Equipment: "dumbbells", Impact: ImpactLow},
	{Name: "Glute Bridge", Movement: MovementLegs, MuscleGroup: "glutes", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Walking Lunge", Movement: MovementLegs, MuscleGroup: "glutes", Difficulty: "intermediate", Equipment: "none", Impact: ImpactModerate},
	{Name: "Standing Calf Raise", Movement: MovementLegs, MuscleGroup: "calves", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},

	// Cardio
	{Name: "Brisk Walking", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Jogging", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "beginner", Equipment: "none", Impact: ImpactModerate},
	{Name: "Jump Rope", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "intermediate", Equipment: "none", Impact: ImpactHigh},
	{Name: "Burpees", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "advanced", Equipment: "none", Impact: ImpactHigh},
	{Name: "Surya Namaskar", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "beginner", Equipment: "none", Impact: ImpactLow},
	{Name: "Stationary Cycling", Movement: MovementCardio, MuscleGroup: "full body", Difficulty: "beginner", Equipment: "machine", Impact: ImpactLow},
}
