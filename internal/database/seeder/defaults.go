package seeder

func Defaults() []Seeder {
	return []Seeder{
		DemoEmployerSeeder{},
		DemoJobsSeeder{},
	}
}
