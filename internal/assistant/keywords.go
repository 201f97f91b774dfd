package assistant

// Medical vocabulary: diseases, symptoms, drugs, specialties. Queries scoring
// high here route to the medical template path.
var medicalKeywords = []string{
	// Diseases and conditions
	"diabetes", "diabetic", "blood sugar", "glucose", "insulin",
	"hypertension", "blood pressure", "bp", "high bp", "low bp",
	"thyroid", "hypothyroid", "hyperthyroid", "tsh",
	"pcos", "pcod", "polycystic",
	"cholesterol", "lipid", "triglyceride",
	"arthritis", "joint pain", "inflammation",
	"asthma", "breathing", "respiratory",
	"heart disease", "cardiac", "cardiovascular",
	"kidney", "renal", "liver", "hepatic",
	"cancer", "tumor", "malignant",
	"infection", "bacterial", "viral", "fungal",

	// Symptoms
	"fever", "temperature", "cough", "cold", "flu",
	"headache", "migraine", "pain", "ache",
	"nausea", "vomiting", "diarrhea", "constipation",
	"rash", "itching", "swelling", "bruise",
	"bleeding", "discharge", "wound",
	"fatigue", "weakness", "dizziness", "vertigo",

	// Medical terms
	"diagnosis", "treatment", "medication", "medicine", "drug",
	"prescription", "dosage", "side effect",
	"surgery", "operation", "procedure",
	"lab", "scan", "x-ray", "mri", "ct scan", "blood test",
	"doctor", "physician", "specialist", "hospital", "clinic",
	"emergency", "urgent", "acute", "chronic",

	// Body systems
	"digestive", "nervous", "endocrine", "immune", "lymphatic", "urinary",
}

// Ayurvedic and wellness vocabulary. Queries scoring high here route to the
// free-text generation path.
var ayurvedicKeywords = []string{
	// Ayurvedic concepts
	"dosha", "vata", "pitta", "kapha", "prakriti", "vikriti",
	"panchakarma", "abhyanga", "shirodhara", "nasya", "basti",
	"ayurveda", "ayurvedic", "ayurved",
	"tridosha", "agni", "ama", "ojas", "prana",

	// Wellness and lifestyle
	"diet plan", "meal plan", "nutrition", "healthy eating",
	"workout", "exercise", "fitness", "yoga", "asana",
	"meditation", "pranayama", "breathing exercise",
	"wellness", "wellbeing", "lifestyle", "routine",
	"sleep", "rest", "relaxation", "stress management",

	// Ayurvedic treatments
	"herbal", "herbs", "spices", "turmeric", "ginger",
	"ashwagandha", "triphala", "brahmi", "tulsi",
	"ghee", "oil massage", "detox", "cleanse",

	// General health
	"weight loss", "weight gain", "body type",
	"energy", "vitality", "balance", "harmony",
}
