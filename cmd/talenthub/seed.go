package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mariana/talent-hub/internal/config"
	"github.com/mariana/talent-hub/internal/db"
)

var seedAdminPassword string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	Long:  `Insert a demo admin user, jobs, candidates and talent pool entries for local development. Safe to run more than once; duplicate usernames are skipped.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "Password for the seeded admin user (required)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if seedAdminPassword == "" {
		return fmt.Errorf("--admin-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := seedUsers(ctx, database); err != nil {
		return err
	}

	jobIDs, err := seedJobs(ctx, database)
	if err != nil {
		return err
	}
	if err := seedCandidates(ctx, database, jobIDs); err != nil {
		return err
	}
	if err := seedTalents(ctx, database); err != nil {
		return err
	}

	fmt.Println("Demo data seeded.")
	return nil
}

func seedUsers(ctx context.Context, database *db.DB) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}
	hash, err := passwordConfig.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	users := []struct {
		username  string
		role      string
		specialty string
	}{
		{"pedro", db.RoleAdmin, "Generalista"},
		{"marcos", db.RoleUser, "Cozinha"},
		{"luan", db.RoleUser, "Financeiro"},
	}

	for _, u := range users {
		exists, err := database.CheckUsernameExists(ctx, u.username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := database.CreateUser(ctx, u.username, hash, u.role, u.specialty); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		fmt.Printf("User %s created.\n", u.username)
	}
	return nil
}

func seedJobs(ctx context.Context, database *db.DB) (map[string]uuid.UUID, error) {
	jobs := map[string]*db.Job{
		"sg": {
			Title:       "Auxiliar de Serviços Gerais",
			Department:  "Operações",
			Location:    "Campinas, SP",
			Description: "Vaga versátil com foco em limpeza, organização e suporte geral às operações do restaurante.",
			Responsibilities: db.StringArray{
				"Auxiliar a equipe de cozinha no preparo dos pedidos quando houver demanda",
				"Realizar a limpeza e manutenção do salão e áreas comuns",
				"Auxiliar no fechamento de caixa e organização final do expediente",
			},
			Benefits: db.StringArray{
				"Vale Refeição/Alimentação",
				"Refeição no local",
				"Horas extras remuneradas",
			},
			Requirements: db.StringArray{
				"Possuir idade acima de 18 anos",
				"Ensino Médio completo ou cursando",
				"Disponibilidade de horário (escala 5x2)",
			},
			Sources: db.JobSources{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/jobs"},
			},
			Status: db.JobStatusActive,
		},
		"ch": {
			Title:       "Chapeiro",
			Department:  "Cozinha",
			Location:    "Campinas, SP",
			Description: "Preparar e montar os lanches do cardápio na chapa, seguindo os padrões de qualidade e tempo da casa.",
			Responsibilities: db.StringArray{
				"Operar a chapa para grelhar carnes e outros ingredientes",
				"Montar os lanches conforme a comanda e o padrão de qualidade",
				"Manter a limpeza e organização da estação de trabalho",
			},
			Benefits: db.StringArray{"Vale Transporte", "Refeição no Local"},
			Requirements: db.StringArray{
				"Ensino Médio completo",
				"Experiência como chapeiro ou cozinheiro",
				"Boas práticas de manipulação de alimentos",
			},
			Status: db.JobStatusActive,
		},
		"mkt": {
			Title:       "Analista de Marketing",
			Department:  "Marketing",
			Location:    "Campinas, SP",
			Description: "Criar e gerenciar campanhas de marketing digital, gerir redes sociais e analisar métricas de performance.",
			Responsibilities: db.StringArray{
				"Gerenciar o calendário de postagens nas redes sociais",
				"Criar artes e textos para posts e anúncios",
				"Analisar métricas e gerar relatórios de desempenho",
			},
			Benefits: db.StringArray{"Vale Refeição", "Plano de Saúde", "Trabalho Híbrido"},
			Requirements: db.StringArray{
				"Superior em Marketing, Publicidade ou áreas correlatas",
				"Experiência com gestão de redes sociais para negócios",
				"Boa comunicação e criatividade",
			},
			Sources: db.JobSources{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/jobs"},
				{Name: "Catho", URL: "https://www.catho.com.br"},
			},
			Status: db.JobStatusActive,
		},
	}

	ids := make(map[string]uuid.UUID, len(jobs))
	for key, job := range jobs {
		id, err := database.CreateJob(ctx, job)
		if err != nil {
			return nil, fmt.Errorf("failed to create job %q: %w", job.Title, err)
		}
		ids[key] = id
		fmt.Printf("Job %q created.\n", job.Title)
	}
	return ids, nil
}

func seedCandidates(ctx context.Context, database *db.DB, jobIDs map[string]uuid.UUID) error {
	today := db.Date{Time: time.Now()}
	daysAgo := func(n int) db.Date {
		return db.Date{Time: time.Now().AddDate(0, 0, -n)}
	}

	candidates := []*db.Candidate{
		{
			Name:            "Ana Souza",
			Age:             24,
			MaritalStatus:   "Solteira",
			Location:        "Barão Geraldo - Campinas, SP",
			Experience:      "3 anos de experiência em áreas correlatas.",
			Education:       "Ensino Médio completo",
			Skills:          db.StringArray{"Proatividade", "Comunicação", "Trabalho em Equipe"},
			Summary:         "Profissional com 3 anos de experiência, buscando novos desafios.",
			JobID:           jobIDs["sg"],
			FitScore:        8.2,
			Status:          db.StatusApplied,
			ApplicationDate: daysAgo(12),
			Source:          "LinkedIn",
			Resume: db.Resume{
				ProfessionalExperience: []db.ResumeExperience{
					{Company: "Rede Alimentar", Role: "Assistente", Duration: "3 anos"},
				},
				Availability: "Período integral",
				Contact:      db.ResumeContact{Phone: "(19) 99201-1122", Email: "ana@example.com"},
			},
		},
		{
			Name:            "Bruno Lima",
			Age:             31,
			MaritalStatus:   "Casado",
			Location:        "Taquaral - Campinas, SP",
			Experience:      "5 anos como chapeiro em hamburguerias.",
			Education:       "Ensino Médio completo",
			Skills:          db.StringArray{"Chapa", "Agilidade", "Organização"},
			Summary:         "Chapeiro experiente, acostumado a alto volume de comandas.",
			JobID:           jobIDs["ch"],
			FitScore:        9.1,
			Status:          db.StatusScreening,
			ApplicationDate: daysAgo(20),
			Source:          "Indicação",
			Resume: db.Resume{
				ProfessionalExperience: []db.ResumeExperience{
					{Company: "Burger House", Role: "Chapeiro", Duration: "5 anos"},
				},
				Availability: "Período integral",
				Contact:      db.ResumeContact{Phone: "(19) 99873-4455", Email: "bruno@example.com"},
			},
		},
		{
			Name:            "Carla Mendes",
			Age:             27,
			Location:        "Cambuí - Campinas, SP",
			Experience:      "4 anos em marketing digital para restaurantes.",
			Education:       "Superior completo em Marketing - PUC-Campinas",
			Skills:          db.StringArray{"Mídias Sociais", "Campanhas", "Gestão de tráfego"},
			Summary:         "Analista de marketing com foco em food service.",
			JobID:           jobIDs["mkt"],
			FitScore:        8.8,
			Status:          db.StatusApplied,
			ApplicationDate: today,
			Source:          "Catho",
			Resume: db.Resume{
				ProfessionalExperience: []db.ResumeExperience{
					{Company: "Agência Sabor", Role: "Analista de Marketing", Duration: "4 anos"},
				},
				Availability: "Período integral",
				Contact:      db.ResumeContact{Phone: "(19) 99310-7788", Email: "carla@example.com"},
			},
		},
	}

	for _, c := range candidates {
		if _, err := database.CreateCandidate(ctx, c); err != nil {
			return fmt.Errorf("failed to create candidate %q: %w", c.Name, err)
		}
	}
	fmt.Printf("%d candidates created.\n", len(candidates))
	return nil
}

func seedTalents(ctx context.Context, database *db.DB) error {
	talents := []*db.Talent{
		{
			Name:            "Ana Beatriz Moreira",
			Age:             26,
			City:            "Campinas",
			Education:       "Graduação em Administração - UNIP",
			Experience:      "4 anos em franquias alimentícias",
			Skills:          db.StringArray{"Gestão de equipe", "Atendimento", "Liderança"},
			Potential:       9.2,
			Status:          db.TalentStatusAvailable,
			DesiredPosition: "Supervisora de Operações",
		},
		{
			Name:            "Carlos Eduardo Silva",
			Age:             29,
			City:            "Campinas",
			Education:       "Graduação em Marketing - PUC-Campinas",
			Experience:      "5 anos em marketing digital e gestão de marca para restaurantes",
			Skills:          db.StringArray{"Branding", "Mídias Sociais", "Campanhas"},
			Potential:       9.5,
			Status:          db.TalentStatusAvailable,
			DesiredPosition: "Coordenador de Marketing",
		},
	}

	for _, t := range talents {
		if _, err := database.CreateTalent(ctx, t); err != nil {
			return fmt.Errorf("failed to create talent %q: %w", t.Name, err)
		}
	}
	fmt.Printf("%d talent pool entries created.\n", len(talents))
	return nil
}
