package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogctrl "moviemania/internal/controller/catalog"
	"moviemania/internal/recordio"
	"moviemania/pkg/model"
)

func printMovies(movies []model.Movie) {
	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return
	}
	for i := range movies {
		m := &movies[i]
		fmt.Printf("%d\t%s (%d)\t%s\t%s\n", m.ID, m.Title, m.Year, recordio.FormatFloat(m.Rating), m.Genre)
	}
}

func newMoviesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse, search and administer the catalog",
	}
	cmd.AddCommand(newMoviesListCmd(), newMoviesSearchCmd(), newMoviesShowCmd(),
		newMoviesAddCmd(), newMoviesUpdateCmd(), newMoviesRemoveCmd())
	return cmd
}

func newMoviesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every movie in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			movies, err := theApp.catalog.Browse(cmd.Context())
			if err != nil {
				return err
			}
			printMovies(movies)
			return nil
		},
	}
}

func newMoviesSearchCmd() *cobra.Command {
	var criteria catalogctrl.Criteria
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog by genre, year, rating and title",
		RunE: func(cmd *cobra.Command, _ []string) error {
			movies, err := theApp.catalog.Search(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			printMovies(movies)
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Genre, "genre", catalogctrl.GenreAll, "genre substring, case-insensitive")
	cmd.Flags().StringVar(&criteria.Year, "year", "", "exact release year")
	cmd.Flags().Float64Var(&criteria.MinRating, "min-rating", 0, "minimum rating")
	cmd.Flags().StringVar(&criteria.Title, "title", "", "title substring, case-insensitive")
	return cmd
}

func newMoviesShowCmd() *cobra.Command {
	var id uint64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one movie's full details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := theApp.catalog.Get(cmd.Context(), model.MovieID(id))
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d)\nRating: %s\nGenre: %s\nMain cast: %s\n%s\n",
				m.Title, m.Year, recordio.FormatFloat(m.Rating), m.Genre, m.MainCast, m.Description)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&id, "id", 0, "movie id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func movieFlags(cmd *cobra.Command, m *model.Movie) {
	cmd.Flags().StringVar(&m.Title, "title", "", "title")
	cmd.Flags().IntVar(&m.Year, "year", 0, "release year")
	cmd.Flags().StringVar(&m.MainCast, "cast", "", "main cast")
	cmd.Flags().Float64Var(&m.Rating, "rating", 0, "rating, 0 to 10")
	cmd.Flags().StringVar(&m.Genre, "genre", "", "genre")
	cmd.Flags().StringVar(&m.Description, "description", "", "description")
	cmd.Flags().StringVar(&m.CoverImagePath, "cover", "", "cover image path")
}

func newMoviesAddCmd() *cobra.Command {
	var id uint64
	var m model.Movie
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the catalog (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := theApp.session(true); err != nil {
				return err
			}
			m.ID = model.MovieID(id)
			if err := theApp.catalog.Add(cmd.Context(), &m); err != nil {
				return err
			}
			fmt.Printf("Added movie %d.\n", m.ID)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&id, "id", 0, "movie id, must be unused")
	movieFlags(cmd, &m)
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("genre")
	return cmd
}

func newMoviesUpdateCmd() *cobra.Command {
	var id uint64
	var m model.Movie
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update fields of an existing movie (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := theApp.session(true); err != nil {
				return err
			}
			flags := cmd.Flags()
			err := theApp.catalog.Update(cmd.Context(), model.MovieID(id), func(s *model.Movie) {
				if flags.Changed("title") {
					s.Title = m.Title
				}
				if flags.Changed("year") {
					s.Year = m.Year
				}
				if flags.Changed("cast") {
					s.MainCast = m.MainCast
				}
				if flags.Changed("rating") {
					s.Rating = m.Rating
				}
				if flags.Changed("genre") {
					s.Genre = m.Genre
				}
				if flags.Changed("description") {
					s.Description = m.Description
				}
				if flags.Changed("cover") {
					s.CoverImagePath = m.CoverImagePath
				}
			})
			if err != nil {
				return err
			}
			fmt.Printf("Updated movie %d.\n", id)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&id, "id", 0, "movie id")
	movieFlags(cmd, &m)
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newMoviesRemoveCmd() *cobra.Command {
	var id uint64
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a movie from the catalog (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := theApp.session(true); err != nil {
				return err
			}
			removed, err := theApp.catalog.Remove(cmd.Context(), model.MovieID(id))
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("No movie with id %d.\n", id)
				return nil
			}
			fmt.Printf("Removed movie %d.\n", id)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&id, "id", 0, "movie id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
