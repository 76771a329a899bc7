/*
Command acetap works with Jupiter Ace tape images, chiefly to turn saved Forth
dictionaries back into source text.

A dictionary tape holds a header block, naming the program and the address it
loads at, followed by a data block holding the raw dictionary: a chain of word
records, each a name, a length, a link to the previous word, a flags byte, a
code field, and parameter bytes. The code field says how the word was defined
(":", CREATE, VARIABLE, CONSTANT, DEFINER, COMPILER, or a user DEFINER word),
and for colon words the parameters are a thread of code field addresses of
the words they call, some followed by inline data: literals, ASCII characters,
floating point numbers, strings and comments.

Decompiling walks the records once to learn the address of every word, then
decodes each record in order against a vocabulary seeded from the ROM's
built-in words. DEFINER words teach the vocabulary new defining behaviors as
they are decoded, so records must be decoded in dictionary order; every file
gets a vocabulary of its own.

Commands:

	decompile  decompile dictionary tapes into .fs source files
	records    list the word records of dictionary tapes
	words      list the built-in vocabulary
	ls         list the programs on TAP files
	split      split multi-program TAP files
	tzx2tap    convert TZX images to TAP files
	tap2tzx    convert TAP files into a TZX image
	autorun    create a tape that runs a command when loaded
	bin2forth  wrap machine code files as Forth words

See internal/dict for the decompiler itself.
*/
package main
