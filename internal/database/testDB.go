package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/agrwatching/backend-stti-career/internal/model"
	"github.com/agrwatching/backend-stti-career/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported seeded users, profiles and job posts for tests
var (
	TestAdminUser      m.User
	TestUserHR1        m.User
	TestUserHR2        m.User
	TestUserApplicant1 m.User
	TestUserApplicant2 m.User

	TestProfile1 m.ApplicantProfile
	TestProfile2 m.ApplicantProfile

	TestCompany1 m.Company
	TestCompany2 m.Company

	// TestJobPostHR1A and TestJobPostHR1B belong to HR1; TestJobPostHR2
	// belongs to HR2 and must never show up in HR1-scoped queries.
	TestJobPostHR1A m.JobPost
	TestJobPostHR1B m.JobPost
	TestJobPostHR2  m.JobPost

	// TestSeedPassword is the plain password shared by all seeded users
	TestSeedPassword = "SeedPass123!"
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample users, profiles, companies and job posts if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	// Ignore admin user that may got create during NewDBInstance
	if userCount > 1 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	userSpecs := []struct {
		username string
		fullName string
		email    string
		role     string
	}{
		{"admin_user", "Site Admin", "admin@example.com", m.RoleAdmin},
		{"hr_user_1", "Rina Hartati", "hr1@example.com", m.RoleHR},
		{"hr_user_2", "Joko Prasetyo", "hr2@example.com", m.RoleHR},
		{"applicant_user_1", "Alice Nguyen", "alice@example.com", m.RolePelamar},
		{"applicant_user_2", "Budi Santoso", "budi@example.com", m.RolePelamar},
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		email := s.email
		users = append(users, m.User{
			Username: s.username,
			FullName: s.fullName,
			Email:    &email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Username {
		case "admin_user":
			TestAdminUser = u
		case "hr_user_1":
			TestUserHR1 = u
		case "hr_user_2":
			TestUserHR2 = u
		case "applicant_user_1":
			TestUserApplicant1 = u
		case "applicant_user_2":
			TestUserApplicant2 = u
		}
	}

	gpa1 := 3.6
	gradYear := 2024
	profiles := []m.ApplicantProfile{
		{
			UserID:          TestUserApplicant1.ID,
			EducationLevel:  "S1",
			Major:           "Informatika",
			InstitutionName: "STTI",
			GPA:             &gpa1,
			GraduationYear:  &gradYear,
			CVFile:          "cv-alice.pdf",
			CoverLetterFile: "cover-alice.pdf",
			PortfolioFile:   "portfolio-alice.pdf",
			ProfilePhoto:    "alice.jpg",
		},
		{
			UserID:         TestUserApplicant2.ID,
			EducationLevel: "D3",
			Major:          "Sistem Informasi",
			CVFile:         "cv-budi.pdf",
		},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}
	TestProfile1 = profiles[0]
	TestProfile2 = profiles[1]

	companies := []m.Company{
		{Name: "TechNova", Industry: "Software"},
		{Name: "DataForge", Industry: "Consulting"},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1 = companies[0]
	TestCompany2 = companies[1]

	jobPosts := []m.JobPost{
		{
			HRID:        TestUserHR1.ID,
			CompanyID:   &TestCompany1.ID,
			Title:       "Backend Engineer",
			Location:    "Jakarta (Hybrid)",
			SalaryRange: "8-12 juta",
			Tags:        []string{"go", "backend", "api"},
		},
		{
			// company-less posting
			HRID:        TestUserHR1.ID,
			Title:       "QA Engineer",
			Location:    "Remote",
			SalaryRange: "6-9 juta",
			Tags:        []string{"testing", "automation"},
		},
		{
			HRID:        TestUserHR2.ID,
			CompanyID:   &TestCompany2.ID,
			Title:       "Data Analyst",
			Location:    "Bandung",
			SalaryRange: "7-10 juta",
			Tags:        []string{"data", "sql"},
		},
	}
	if err := db.Create(&jobPosts).Error; err != nil {
		return err
	}
	TestJobPostHR1A = jobPosts[0]
	TestJobPostHR1B = jobPosts[1]
	TestJobPostHR2 = jobPosts[2]

	// Enrichment fixtures for applicant 1; applicant 2 stays empty on purpose
	start1 := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	end1 := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	start2 := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	experiences := []m.WorkExperience{
		{
			UserID:         TestUserApplicant1.ID,
			CompanyName:    "PT Maju Jaya",
			Position:       "Junior Developer",
			StartDate:      &start1,
			EndDate:        &end1,
			JobDescription: "Maintained internal tooling",
		},
		{
			UserID:      TestUserApplicant1.ID,
			CompanyName: "TechNova",
			Position:    "Backend Developer",
			StartDate:   &start2,
		},
	}
	if err := db.Create(&experiences).Error; err != nil {
		return err
	}

	issue := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	certificates := []m.Certificate{
		{
			UserID:          TestUserApplicant1.ID,
			CertificateName: "AWS Cloud Practitioner",
			Issuer:          "Amazon",
			IssueDate:       &issue,
			CertificateFile: "aws-cp.pdf",
		},
		{
			UserID:          TestUserApplicant1.ID,
			CertificateName: "TOEFL ITP",
			Issuer:          "ETS",
		},
	}
	return db.Create(&certificates).Error
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"admin_user", "hr_user_1", "hr_user_2", "applicant_user_1", "applicant_user_2",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "admin_user":
			TestAdminUser = u
		case "hr_user_1":
			TestUserHR1 = u
		case "hr_user_2":
			TestUserHR2 = u
		case "applicant_user_1":
			TestUserApplicant1 = u
		case "applicant_user_2":
			TestUserApplicant2 = u
		}
	}

	if err := db.First(&TestProfile1, "user_id = ?", TestUserApplicant1.ID).Error; err != nil {
		return err
	}
	if err := db.First(&TestProfile2, "user_id = ?", TestUserApplicant2.ID).Error; err != nil {
		return err
	}

	_ = db.First(&TestCompany1, "name = ?", "TechNova").Error
	_ = db.First(&TestCompany2, "name = ?", "DataForge").Error

	var posts []m.JobPost
	if err := db.Order("id ASC").Limit(3).Find(&posts).Error; err == nil {
		if len(posts) > 0 {
			TestJobPostHR1A = posts[0]
		}
		if len(posts) > 1 {
			TestJobPostHR1B = posts[1]
		}
		if len(posts) > 2 {
			TestJobPostHR2 = posts[2]
		}
	}

	return nil
}
