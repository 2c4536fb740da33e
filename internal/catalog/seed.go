package catalog

// Built-in seed catalog: a trimester-based CSE curriculum in the shape used
// by UIU-style programs. Core courses carry the trimester they are normally
// offered in; electives carry none. Exam metadata is only present where the
// registrar publishes a fixed final-exam block.

var seedCore = []Course{
	// Trimester 1
	{Code: "ENG 1011", Name: "English I", Credit: 3, Difficulty: DifficultyEasy, Trimester: 1, ExamDay: "Sunday", ExamSlot: "T1"},
	{Code: "CSE 1110", Name: "Introduction to Computer Systems", Credit: 1, Difficulty: DifficultyEasy, Trimester: 1},
	{Code: "CSE 1111", Name: "Structured Programming Language", Credit: 3, Difficulty: DifficultyMedium, Trimester: 1, ExamDay: "Tuesday", ExamSlot: "T2"},
	{Code: "CSE 1112", Name: "Structured Programming Language Laboratory", Credit: 1, Difficulty: DifficultyEasy, Trimester: 1},
	{Code: "MATH 1151", Name: "Fundamental Calculus", Credit: 3, Difficulty: DifficultyMedium, Trimester: 1, ExamDay: "Thursday", ExamSlot: "T1"},

	// Trimester 2
	{Code: "ENG 1013", Name: "English II", Credit: 3, Prerequisites: []string{"ENG 1011"}, Difficulty: DifficultyEasy, Trimester: 2, ExamDay: "Sunday", ExamSlot: "T2"},
	{Code: "CSE 1115", Name: "Object Oriented Programming", Credit: 3, Prerequisites: []string{"CSE 1111"}, Difficulty: DifficultyMedium, Trimester: 2, ExamDay: "Tuesday", ExamSlot: "T1"},
	{Code: "CSE 1116", Name: "Object Oriented Programming Laboratory", Credit: 1, Prerequisites: []string{"CSE 1112"}, Difficulty: DifficultyEasy, Trimester: 2},
	{Code: "MATH 2183", Name: "Calculus and Linear Algebra", Credit: 3, Prerequisites: []string{"MATH 1151"}, Difficulty: DifficultyMedium, Trimester: 2, ExamDay: "Thursday", ExamSlot: "T2"},
	{Code: "BDS 1201", Name: "History of the Emergence of Bangladesh", Credit: 2, Difficulty: DifficultyEasy, Trimester: 2},

	// Trimester 3
	{Code: "CSE 1325", Name: "Digital Logic Design", Credit: 3, Prerequisites: []string{"CSE 1110"}, Difficulty: DifficultyMedium, Trimester: 3, ExamDay: "Monday", ExamSlot: "T1"},
	{Code: "CSE 1326", Name: "Digital Logic Design Laboratory", Credit: 1, Difficulty: DifficultyEasy, Trimester: 3},
	{Code: "CSE 2213", Name: "Discrete Mathematics", Credit: 3, Prerequisites: []string{"MATH 1151"}, Difficulty: DifficultyMedium, Trimester: 3, ExamDay: "Wednesday", ExamSlot: "T2"},
	{Code: "MATH 2201", Name: "Coordinate Geometry and Vector Analysis", Credit: 3, Prerequisites: []string{"MATH 2183"}, Difficulty: DifficultyMedium, Trimester: 3, ExamDay: "Thursday", ExamSlot: "T3"},
	{Code: "PHY 2105", Name: "Physics", Credit: 3, Difficulty: DifficultyMedium, Trimester: 3, ExamDay: "Saturday", ExamSlot: "T1"},

	// Trimester 4
	{Code: "CSE 2215", Name: "Data Structures and Algorithms I", Credit: 3, Prerequisites: []string{"CSE 1115"}, Difficulty: DifficultyHard, Trimester: 4, ExamDay: "Tuesday", ExamSlot: "T3"},
	{Code: "CSE 2216", Name: "Data Structures and Algorithms I Laboratory", Credit: 1, Prerequisites: []string{"CSE 1116"}, Difficulty: DifficultyMedium, Trimester: 4},
	{Code: "PHY 2106", Name: "Physics Laboratory", Credit: 1, Prerequisites: []string{"PHY 2105"}, Difficulty: DifficultyEasy, Trimester: 4},
	{Code: "MATH 2205", Name: "Probability and Statistics", Credit: 3, Prerequisites: []string{"MATH 2183"}, Difficulty: DifficultyMedium, Trimester: 4, ExamDay: "Thursday", ExamSlot: "T1"},
	{Code: "SOC 2101", Name: "Society, Environment and Engineering Ethics", Credit: 3, Difficulty: DifficultyEasy, Trimester: 4, ExamDay: "Sunday", ExamSlot: "T3"},

	// Trimester 5
	{Code: "CSE 2217", Name: "Data Structures and Algorithms II", Credit: 3, Prerequisites: []string{"CSE 2215"}, Difficulty: DifficultyHard, Trimester: 5, ExamDay: "Tuesday", ExamSlot: "T1"},
	{Code: "CSE 2218", Name: "Data Structures and Algorithms II Laboratory", Credit: 1, Prerequisites: []string{"CSE 2216"}, Difficulty: DifficultyMedium, Trimester: 5},
	{Code: "CSE 2233", Name: "Theory of Computation", Credit: 3, Prerequisites: []string{"CSE 2213"}, Difficulty: DifficultyHard, Trimester: 5, ExamDay: "Monday", ExamSlot: "T2"},
	{Code: "EEE 2113", Name: "Electrical Circuits", Credit: 3, Prerequisites: []string{"PHY 2105"}, Difficulty: DifficultyMedium, Trimester: 5, ExamDay: "Wednesday", ExamSlot: "T1"},

	// Trimester 6
	{Code: "CSE 3313", Name: "Computer Architecture", Credit: 3, Prerequisites: []string{"CSE 1325"}, Difficulty: DifficultyMedium, Trimester: 6, ExamDay: "Monday", ExamSlot: "T3"},
	{Code: "CSE 3811", Name: "Artificial Intelligence", Credit: 3, Prerequisites: []string{"CSE 2217"}, Difficulty: DifficultyHard, Trimester: 6, ExamDay: "Tuesday", ExamSlot: "T2"},
	{Code: "CSE 3812", Name: "Artificial Intelligence Laboratory", Credit: 1, Prerequisites: []string{"CSE 2218"}, Difficulty: DifficultyMedium, Trimester: 6},
	{Code: "EEE 2123", Name: "Electronics", Credit: 3, Prerequisites: []string{"EEE 2113"}, Difficulty: DifficultyMedium, Trimester: 6, ExamDay: "Wednesday", ExamSlot: "T3"},

	// Trimester 7
	{Code: "CSE 3411", Name: "System Analysis and Design", Credit: 3, Prerequisites: []string{"CSE 1115"}, Difficulty: DifficultyMedium, Trimester: 7, ExamDay: "Sunday", ExamSlot: "T1"},
	{Code: "CSE 3412", Name: "System Analysis and Design Laboratory", Credit: 1, Difficulty: DifficultyEasy, Trimester: 7},
	{Code: "CSE 3521", Name: "Database Management Systems", Credit: 3, Prerequisites: []string{"CSE 2215"}, Difficulty: DifficultyMedium, Trimester: 7, ExamDay: "Monday", ExamSlot: "T1"},
	{Code: "CSE 3522", Name: "Database Management Systems Laboratory", Credit: 1, Prerequisites: []string{"CSE 2216"}, Difficulty: DifficultyEasy, Trimester: 7},
	{Code: "MATH 3201", Name: "Numerical Methods", Credit: 2, Prerequisites: []string{"MATH 2205"}, Difficulty: DifficultyMedium, Trimester: 7, ExamDay: "Thursday", ExamSlot: "T2"},

	// Trimester 8
	{Code: "CSE 3711", Name: "Computer Networks", Credit: 3, Prerequisites: []string{"CSE 3313"}, Difficulty: DifficultyMedium, Trimester: 8, ExamDay: "Tuesday", ExamSlot: "T2"},
	{Code: "CSE 3712", Name: "Computer Networks Laboratory", Credit: 1, Difficulty: DifficultyEasy, Trimester: 8},
	{Code: "CSE 4165", Name: "Web Programming", Credit: 3, Prerequisites: []string{"CSE 3521"}, Difficulty: DifficultyMedium, Trimester: 8, ExamDay: "Wednesday", ExamSlot: "T1"},
	{Code: "CSE 3421", Name: "Software Engineering", Credit: 3, Prerequisites: []string{"CSE 3411"}, Difficulty: DifficultyMedium, Trimester: 8, ExamDay: "Sunday", ExamSlot: "T2"},

	// Trimester 9
	{Code: "CSE 4325", Name: "Microprocessors and Microcontrollers", Credit: 3, Prerequisites: []string{"CSE 3313", "EEE 2123"}, Difficulty: DifficultyHard, Trimester: 9, ExamDay: "Monday", ExamSlot: "T2"},
	{Code: "CSE 4326", Name: "Microprocessors and Microcontrollers Laboratory", Credit: 1, Difficulty: DifficultyMedium, Trimester: 9},
	{Code: "CSE 4509", Name: "Operating Systems", Credit: 3, Prerequisites: []string{"CSE 2217", "CSE 3313"}, Difficulty: DifficultyHard, Trimester: 9, ExamDay: "Tuesday", ExamSlot: "T3"},
	{Code: "CSE 4510", Name: "Operating Systems Laboratory", Credit: 1, Prerequisites: []string{"CSE 2218"}, Difficulty: DifficultyMedium, Trimester: 9},
	{Code: "ECO 4101", Name: "Economics", Credit: 2, Difficulty: DifficultyEasy, Trimester: 9, ExamDay: "Saturday", ExamSlot: "T2"},

	// Trimester 10
	{Code: "CSE 4531", Name: "Computer Security", Credit: 3, Prerequisites: []string{"CSE 3711"}, Difficulty: DifficultyHard, Trimester: 10, ExamDay: "Wednesday", ExamSlot: "T2"},
	{Code: "CSE 4601", Name: "Mathematical Analysis for Computer Science", Credit: 3, Prerequisites: []string{"CSE 2213", "MATH 2205"}, Difficulty: DifficultyHard, Trimester: 10, ExamDay: "Thursday", ExamSlot: "T3"},
	{Code: "CSE 4000A", Name: "Final Year Design Project I", Credit: 2, Prerequisites: []string{"CSE 3421"}, Difficulty: DifficultyMedium, Trimester: 10},

	// Trimester 11
	{Code: "CSE 4000B", Name: "Final Year Design Project II", Credit: 2, Prerequisites: []string{"CSE 4000A"}, Difficulty: DifficultyMedium, Trimester: 11},
	{Code: "ACT 2111", Name: "Financial and Managerial Accounting", Credit: 3, Difficulty: DifficultyEasy, Trimester: 11, ExamDay: "Saturday", ExamSlot: "T3"},

	// Trimester 12
	{Code: "CSE 4000C", Name: "Final Year Design Project III", Credit: 2, Prerequisites: []string{"CSE 4000B"}, Difficulty: DifficultyMedium, Trimester: 12},
}

var seedMajors = map[string][]Course{
	"Software Engineering": {
		{Code: "CSE 4451", Name: "Human Computer Interaction", Credit: 3, Prerequisites: []string{"CSE 3421"}, Difficulty: DifficultyMedium, ExamDay: "Sunday", ExamSlot: "T3"},
		{Code: "CSE 4435", Name: "Software Architecture", Credit: 3, Prerequisites: []string{"CSE 3421"}, Difficulty: DifficultyHard, ExamDay: "Monday", ExamSlot: "T3"},
		{Code: "CSE 4441", Name: "Mobile Application Development", Credit: 3, Prerequisites: []string{"CSE 4165"}, Difficulty: DifficultyMedium, ExamDay: "Tuesday", ExamSlot: "T1"},
		{Code: "CSE 4453", Name: "Software Quality Assurance and Testing", Credit: 3, Prerequisites: []string{"CSE 3421"}, Difficulty: DifficultyMedium, ExamDay: "Wednesday", ExamSlot: "T3"},
		{Code: "CSE 4495", Name: "Software Project Management", Credit: 3, Prerequisites: []string{"CSE 3421"}, Difficulty: DifficultyEasy, ExamDay: "Thursday", ExamSlot: "T1"},
	},
	"Data Science": {
		{Code: "CSE 4889", Name: "Machine Learning", Credit: 3, Prerequisites: []string{"CSE 3811", "MATH 2205"}, Difficulty: DifficultyHard, ExamDay: "Sunday", ExamSlot: "T3"},
		{Code: "CSE 4891", Name: "Data Mining", Credit: 3, Prerequisites: []string{"CSE 3521"}, Difficulty: DifficultyHard, ExamDay: "Monday", ExamSlot: "T3"},
		{Code: "CSE 4893", Name: "Introduction to Bioinformatics", Credit: 3, Prerequisites: []string{"CSE 2217"}, Difficulty: DifficultyMedium, ExamDay: "Tuesday", ExamSlot: "T1"},
		{Code: "CSE 4883", Name: "Digital Image Processing", Credit: 3, Prerequisites: []string{"MATH 2183"}, Difficulty: DifficultyHard, ExamDay: "Wednesday", ExamSlot: "T3"},
		{Code: "CSE 4851", Name: "Introduction to Big Data Analytics", Credit: 3, Prerequisites: []string{"CSE 3521"}, Difficulty: DifficultyMedium, ExamDay: "Thursday", ExamSlot: "T1"},
	},
	"Networking": {
		{Code: "CSE 4759", Name: "Wireless and Cellular Communication", Credit: 3, Prerequisites: []string{"CSE 3711"}, Difficulty: DifficultyHard, ExamDay: "Sunday", ExamSlot: "T3"},
		{Code: "CSE 4763", Name: "Telecommunication Networks", Credit: 3, Prerequisites: []string{"CSE 3711"}, Difficulty: DifficultyMedium, ExamDay: "Monday", ExamSlot: "T3"},
		{Code: "CSE 4783", Name: "Cryptography", Credit: 3, Prerequisites: []string{"CSE 4531"}, Difficulty: DifficultyHard, ExamDay: "Tuesday", ExamSlot: "T1"},
		{Code: "CSE 4777", Name: "Networks Security", Credit: 3, Prerequisites: []string{"CSE 4531"}, Difficulty: DifficultyMedium, ExamDay: "Wednesday", ExamSlot: "T3"},
	},
}

var seedGED = []Course{
	{Code: "GED 2101", Name: "Bangladesh Studies", Credit: 3, Difficulty: DifficultyEasy, ExamDay: "Saturday", ExamSlot: "T1"},
	{Code: "GED 2205", Name: "International Relations", Credit: 3, Difficulty: DifficultyEasy, ExamDay: "Saturday", ExamSlot: "T2"},
	{Code: "GED 3105", Name: "Introduction to Psychology", Credit: 3, Difficulty: DifficultyEasy, ExamDay: "Saturday", ExamSlot: "T3"},
	{Code: "GED 3207", Name: "Bangla Language and Literature", Credit: 3, Difficulty: DifficultyEasy, ExamDay: "Sunday", ExamSlot: "T1"},
	{Code: "GED 4201", Name: "Introduction to Philosophy", Credit: 3, Difficulty: DifficultyEasy, ExamDay: "Sunday", ExamSlot: "T2"},
	{Code: "GED 4305", Name: "Project Management and Entrepreneurship", Credit: 3, Difficulty: DifficultyMedium, ExamDay: "Monday", ExamSlot: "T1"},
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	return New(seedCore, seedMajors, seedGED)
}
