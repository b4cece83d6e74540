package cinema

import "github.com/filmhall/cinema-booking/internal/model"

// DefaultMovies returns the starter catalog loaded when the server
// is configured to seed itself.  Useful for demos and manual
// testing against an otherwise empty process.
func DefaultMovies() []model.Movie {
	return []model.Movie{
		{Title: "The Shawshank Redemption", Year: 1994, Director: "Frank Darabont", Genres: []string{"Drama"}, Actors: []string{"Tim Robbins", "Morgan Freeman"}, RuntimeMinutes: 142, Rating: 9.3},
		{Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Genres: []string{"Crime", "Drama"}, Actors: []string{"Marlon Brando", "Al Pacino"}, RuntimeMinutes: 175, Rating: 9.2},
		{Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan", Genres: []string{"Action", "Crime", "Drama"}, Actors: []string{"Christian Bale", "Heath Ledger"}, RuntimeMinutes: 152, Rating: 9.0},
		{Title: "Pulp Fiction", Year: 1994, Director: "Quentin Tarantino", Genres: []string{"Crime", "Drama"}, Actors: []string{"John Travolta", "Uma Thurman", "Samuel L. Jackson"}, RuntimeMinutes: 154, Rating: 8.9},
		{Title: "Forrest Gump", Year: 1994, Director: "Robert Zemeckis", Genres: []string{"Drama", "Romance"}, Actors: []string{"Tom Hanks", "Robin Wright"}, RuntimeMinutes: 142, Rating: 8.8},
		{Title: "Inception", Year: 2010, Director: "Christopher Nolan", Genres: []string{"Action", "Adventure", "Sci-Fi"}, Actors: []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, RuntimeMinutes: 148, Rating: 8.8},
		{Title: "The Matrix", Year: 1999, Director: "Lana Wachowski", Genres: []string{"Action", "Sci-Fi"}, Actors: []string{"Keanu Reeves", "Laurence Fishburne"}, RuntimeMinutes: 136, Rating: 8.7},
		{Title: "Fight Club", Year: 1999, Director: "David Fincher", Genres: []string{"Drama"}, Actors: []string{"Brad Pitt", "Edward Norton"}, RuntimeMinutes: 139, Rating: 8.8},
		{Title: "Goodfellas", Year: 1990, Director: "Martin Scorsese", Genres: []string{"Biography", "Crime", "Drama"}, Actors: []string{"Robert De Niro", "Ray Liotta", "Joe Pesci"}, RuntimeMinutes: 146, Rating: 8.7},
		{Title: "Parasite", Year: 2019, Director: "Bong Joon-ho", Genres: []string{"Comedy", "Drama", "Thriller"}, Actors: []string{"Song Kang-ho", "Lee Sun-kyun"}, RuntimeMinutes: 132, Rating: 8.6},
	}
}

// SeedDefaultCatalog loads DefaultMovies into the catalog and
// returns how many were added.
func (m *Manager) SeedDefaultCatalog() (int, error) {
	added := 0
	for _, movie := range DefaultMovies() {
		if _, err := m.AddMovie(movie); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
