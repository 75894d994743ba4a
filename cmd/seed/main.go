package main

import (
	"flag"
	"log"

	achievementModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	contentModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/models"
	contentRepo "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/repository"
	progressionModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	userModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/config"
)

var (
	withDemoUser bool
)

func init() {
	flag.BoolVar(&withDemoUser, "demo-user", false, "also create a demo account")
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(
		&userModels.User{},
		&contentModels.Module{},
		&contentModels.Lesson{},
		&contentModels.Slide{},
		&progressionModels.ProgressStats{},
		&progressionModels.ModuleProgress{},
		&progressionModels.LearningProfile{},
		&progressionModels.LessonEvent{},
		&achievementModels.UserAchievement{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("🌱 Seeding ECG course content...")

	if err := seedModules(); err != nil {
		log.Fatalf("Failed to seed modules: %v", err)
	}
	log.Printf("✅ Created %d modules", len(courseModules))

	if withDemoUser {
		if err := seedDemoUser(); err != nil {
			log.Fatalf("Failed to seed demo user: %v", err)
		}
		log.Println("✅ Created demo user")
	}

	log.Println("🎉 Done")
}

type moduleSeed struct {
	Slug        string
	Title       string
	Description string
	Lessons     []lessonSeed
}

type lessonSeed struct {
	Title         string
	Description   string
	EstimatedTime int
	Slides        []contentModels.Slide
}

var courseModules = []moduleSeed{
	{
		Slug:        "ecg-basics",
		Title:       "ECG Basics",
		Description: "Electrical conduction, leads and the normal waveform",
		Lessons: []lessonSeed{
			{
				Title:         "The Cardiac Conduction System",
				Description:   "How electrical impulses travel through the heart",
				EstimatedTime: 8,
				Slides: []contentModels.Slide{
					{SortOrder: 1, Type: contentModels.SlideText, Title: "The SA Node",
						Content: "The sinoatrial node is the heart's natural pacemaker, firing 60-100 times per minute."},
					{SortOrder: 2, Type: contentModels.SlideQuiz, Title: "Quick Check",
						Question:      "Which structure is the heart's primary pacemaker?",
						Options:       "SA node|AV node|Bundle of His|Purkinje fibers",
						CorrectAnswer: 0,
						Explanation:   "The SA node initiates each normal heartbeat."},
				},
			},
			{
				Title:         "Reading the Waveform",
				Description:   "P waves, QRS complexes and T waves",
				EstimatedTime: 10,
				Slides: []contentModels.Slide{
					{SortOrder: 1, Type: contentModels.SlideText, Title: "The P Wave",
						Content: "The P wave represents atrial depolarization and normally lasts under 120 ms."},
					{SortOrder: 2, Type: contentModels.SlideFlashcard, Title: "QRS Complex",
						Content: "Ventricular depolarization. Normal duration: 80-120 ms."},
					{SortOrder: 3, Type: contentModels.SlideQuiz, Title: "Quick Check",
						Question:      "What does the QRS complex represent?",
						Options:       "Atrial depolarization|Ventricular depolarization|Ventricular repolarization|Atrial repolarization",
						CorrectAnswer: 1,
						Explanation:   "The QRS complex marks the spread of depolarization through the ventricles."},
				},
			},
		},
	},
	{
		Slug:        "rhythm-recognition",
		Title:       "Rhythm Recognition",
		Description: "Sinus rhythms, blocks and common arrhythmias",
		Lessons: []lessonSeed{
			{
				Title:         "Normal Sinus Rhythm",
				Description:   "The baseline every other rhythm is compared against",
				EstimatedTime: 8,
				Slides: []contentModels.Slide{
					{SortOrder: 1, Type: contentModels.SlideText, Title: "Criteria",
						Content: "Rate 60-100, regular rhythm, upright P before every QRS in lead II."},
					{SortOrder: 2, Type: contentModels.SlideQuiz, Title: "Quick Check",
						Question:      "What is the normal resting heart rate range?",
						Options:       "40-60 bpm|60-100 bpm|100-150 bpm|150-200 bpm",
						CorrectAnswer: 1,
						Explanation:   "Normal sinus rhythm runs between 60 and 100 beats per minute."},
				},
			},
			{
				Title:         "Atrial Fibrillation",
				Description:   "The most common sustained arrhythmia",
				EstimatedTime: 12,
				Slides: []contentModels.Slide{
					{SortOrder: 1, Type: contentModels.SlideText, Title: "Hallmarks",
						Content: "Irregularly irregular rhythm with no discernible P waves."},
					{SortOrder: 2, Type: contentModels.SlideQuiz, Title: "Quick Check",
						Question:      "Which finding is characteristic of atrial fibrillation?",
						Options:       "Sawtooth flutter waves|Irregularly irregular rhythm|Dropped QRS after lengthening PR|Short PR with delta wave",
						CorrectAnswer: 1,
						Explanation:   "AF shows chaotic atrial activity and an irregularly irregular ventricular response."},
				},
			},
		},
	},
	{
		Slug:        "ischemia-infarction",
		Title:       "Ischemia and Infarction",
		Description: "ST changes, T wave abnormalities and infarct localization",
		Lessons: []lessonSeed{
			{
				Title:         "ST Elevation",
				Description:   "Recognizing STEMI patterns",
				EstimatedTime: 12,
				Slides: []contentModels.Slide{
					{SortOrder: 1, Type: contentModels.SlideText, Title: "STEMI Criteria",
						Content: "New ST elevation at the J point in two contiguous leads suggests acute infarction."},
					{SortOrder: 2, Type: contentModels.SlideQuiz, Title: "Quick Check",
						Question:      "ST elevation in leads II, III and aVF points to which wall?",
						Options:       "Anterior|Lateral|Inferior|Posterior",
						CorrectAnswer: 2,
						Explanation:   "Leads II, III and aVF look at the inferior wall of the left ventricle."},
				},
			},
		},
	},
}

func seedModules() error {
	for i, m := range courseModules {
		module := &contentModels.Module{
			Slug:        m.Slug,
			Title:       m.Title,
			Description: m.Description,
			SortOrder:   i + 1,
		}
		if err := contentRepo.CreateModule(module); err != nil {
			return err
		}
		for j, l := range m.Lessons {
			lesson := &contentModels.Lesson{
				ModuleID:      module.ID,
				Title:         l.Title,
				Description:   l.Description,
				SortOrder:     j + 1,
				EstimatedTime: l.EstimatedTime,
				Slides:        l.Slides,
			}
			if err := contentRepo.CreateLesson(lesson); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDemoUser() error {
	user := &userModels.User{
		Username:    "demo",
		DisplayName: "Demo Learner",
		Hearts:      5,
		Rank:        "Medical Student",
	}
	if err := database.DB.Where("username = ?", user.Username).FirstOrCreate(user).Error; err != nil {
		return err
	}
	profile := &progressionModels.LearningProfile{UserID: user.ID, UnlockedModules: "1"}
	return database.DB.Where("user_id = ?", user.ID).FirstOrCreate(profile).Error
}
